package export

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
)

type Request struct {
	Type  domain.ReportType
	Range domain.DateRange
	Scope domain.Scope
}

func (r Request) Validate() error {
	if _, err := domain.ParseReportType(string(r.Type)); err != nil {
		return err
	}
	if _, err := domain.ParseDateRange(string(r.Range)); err != nil {
		return err
	}
	if _, err := domain.ParseScope(string(r.Scope)); err != nil {
		return err
	}
	return nil
}

func (r Request) String() string {
	return fmt.Sprintf("%s/%s/%s", r.Type, r.Range, r.Scope)
}

// Artifact is a finished export document.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
	Pages       int
	Sections    []string
	GeneratedAt time.Time
	// Location is where the sink stored the document, empty without a sink.
	Location string
}

// Job is one export in flight. Its result is available once Done is closed.
type Job struct {
	ID        string
	Request   Request
	StartedAt time.Time

	done     chan struct{}
	artifact *Artifact
	err      error
}

func newJob(id string, req Request, startedAt time.Time) *Job {
	return &Job{ID: id, Request: req, StartedAt: startedAt, done: make(chan struct{})}
}

func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Result blocks until the job settles.
func (j *Job) Result() (*Artifact, error) {
	<-j.done
	return j.artifact, j.err
}

// Wait is Result bounded by ctx. The job keeps running when ctx ends first.
func (j *Job) Wait(ctx context.Context) (*Artifact, error) {
	select {
	case <-j.done:
		return j.artifact, j.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (j *Job) finish(a *Artifact, err error) {
	j.artifact, j.err = a, err
	close(j.done)
}
