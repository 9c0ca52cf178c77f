package view

import (
	"fmt"
	"sync"
)

// Document is a mounted page. Off-screen nodes are attached outside the visible body,
// the way a capture clone is positioned out of the viewport.
type Document struct {
	mu        sync.Mutex
	body      *Node
	offscreen map[*Node]struct{}
}

func NewDocument(body *Node) *Document {
	return &Document{
		body:      body,
		offscreen: make(map[*Node]struct{}),
	}
}

func (d *Document) Body() *Node {
	return d.body
}

// Section returns the body descendant with the given id.
func (d *Document) Section(id string) (*Node, error) {
	var found *Node
	d.body.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("section %q not mounted", id)
	}
	return found, nil
}

// Attached reports whether n belongs to the body or to an off-screen root.
func (d *Document) Attached(n *Node) bool {
	r := n.root()
	if r == d.body {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.offscreen[r]
	return ok
}

// AttachOffscreen mounts a parentless node outside the viewport.
func (d *Document) AttachOffscreen(n *Node) error {
	if n.parent != nil {
		return fmt.Errorf("node %q already has a parent", n.ID)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.offscreen[n] = struct{}{}
	return nil
}

func (d *Document) DetachOffscreen(n *Node) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.offscreen, n)
}

// OffscreenCount is the number of currently attached off-screen roots.
func (d *Document) OffscreenCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.offscreen)
}
