package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// policyDocument mirrors the navigation section of the config file, so the
// output can be pasted back into it.
type policyDocument struct {
	AppOrigin       string   `yaml:"appOrigin"`
	InternalSchemes []string `yaml:"internalSchemes"`
	DenyAbout       bool     `yaml:"denyAbout"`
	AllowedHosts    []string `yaml:"allowedHosts"`
}

func policyCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Prints the effective navigation policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := e.guard.Policy()

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()

			return enc.Encode(map[string]policyDocument{
				"navigation": {
					AppOrigin:       p.AppOrigin,
					InternalSchemes: p.InternalSchemes,
					DenyAbout:       !p.AllowAbout,
					AllowedHosts:    p.AllowedHosts,
				},
			})
		},
	}
}
