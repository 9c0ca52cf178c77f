package commands

import (
	"github.com/de-tools/insure-atlas/pkg/services/delivery"
	"github.com/spf13/cobra"
)

type SinksCmd struct {
	sinksFile string
	env       Env
}

func NewSinksCmd(env Env) *cobra.Command {
	sc := &SinksCmd{env: env}
	cmd := &cobra.Command{
		Use:   "sinks",
		Short: "List configured export sink profiles",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.sinksFile, "sinks-file", "", "Path to the sink profiles file")

	return cmd
}

func (sc *SinksCmd) run(cmd *cobra.Command, _ []string) error {
	path, err := sinksFile(sc.sinksFile, sc.env)
	if err != nil {
		return err
	}

	registry, err := delivery.NewRegistry(path)
	if err != nil {
		return err
	}
	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	return sc.env.Reporter.Profiles(profiles)
}
