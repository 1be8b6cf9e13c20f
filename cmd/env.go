package cmd

import (
	"os"
	"sort"

	"github.com/cine-cli/cine/color"
	"github.com/cine-cli/cine/config"
	"github.com/cine-cli/cine/style"
	"github.com/cine-cli/cine/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// envVar is one variable cine reads.
type envVar struct {
	name   string
	secret bool
}

func envVars() []envVar {
	vars := lo.Map(lo.Values(config.Default), func(f config.Field, _ int) envVar {
		return envVar{name: f.Env(), secret: f.Secret}
	})
	vars = append(vars,
		envVar{name: where.EnvConfigPath},
		envVar{name: config.LegacyAPIKeyEnv, secret: true},
	)

	sort.Slice(vars, func(i, j int) bool {
		return vars[i].name < vars[j].name
	})
	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")

	envCmd.SetOut(os.Stdout)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables cine reads",
	Long:  "List the environment variables cine reads, with their values in this shell. API keys are masked.",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		name := style.New().Bold(true).Foreground(color.Purple).Render

		for _, v := range envVars() {
			value, present := os.LookupEnv(v.name)
			present = present && value != ""
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			switch {
			case !present:
				cmd.Printf("%s=%s\n", name(v.name), style.Fg(color.Red)("unset"))
			case v.secret:
				cmd.Printf("%s=%s\n", name(v.name), style.Fg(color.Yellow)("********"))
			default:
				cmd.Printf("%s=%s\n", name(v.name), style.Fg(color.Green)(value))
			}
		}
	},
}
