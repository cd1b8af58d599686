package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "targets",
		Short: "List targets declared in the manifest",
		Long: `List the pod targets declared in podlink.yaml with their platform
and linkage mode.`,
		Usage: "podlink targets",
		Run:   runTargets,
	})
}

func runTargets(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("targets takes no arguments")
	}

	p, err := loadProject()
	if err != nil {
		return err
	}

	for _, decl := range p.Manifest.Targets {
		platform := decl.Platform
		if platform == "" {
			platform = "ios"
		}
		if decl.DeploymentTarget != "" {
			platform += " " + decl.DeploymentTarget
		}

		mode := "static library"
		if decl.DynamicFramework {
			mode = "dynamic framework"
		}

		fmt.Printf("  %-20s %-14s %s\n", decl.Name, platform, mode)
	}

	return nil
}
