// /home/krylon/go/src/github.com/blicero/herald/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 07. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 21:14:50 krylon>

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blicero/herald/backend"
	"github.com/blicero/herald/common"
	"github.com/spf13/cobra"
)

var (
	appDir, cfgPath, addr string
	cfg                   *common.Config
)

var rootCmd = &cobra.Command{
	Use:   "herald",
	Short: "Keeps track of upcoming events and reminds you of them",
	Long: `Herald keeps a list of timed events and sends a notification
shortly before each of them comes up.
Run "herald serve" to start the daemon, the other commands talk to it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if appDir != "" && appDir != common.BaseDir {
			if err = common.SetBaseDir(appDir); err != nil {
				return fmt.Errorf("Cannot set base directory to %s: %w", appDir, err)
			}
		}

		if cfgPath == "" {
			cfgPath = common.ConfigPath
		}

		if cfg, err = common.LoadConfig(cfgPath); err != nil {
			return err
		} else if addr != "" {
			cfg.Listen = addr
		}

		return common.SetLogLevel(cfg.LogLevel)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Herald daemon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			err    error
			daemon *backend.Daemon
		)

		fmt.Printf("%s %s (built %s)\n",
			common.AppName,
			common.Version,
			common.BuildStamp)

		if daemon, err = backend.Summon(cfg); err != nil {
			return fmt.Errorf("Failed to initialize backend: %w", err)
		}

		var sigQ = make(chan os.Signal, 1)
		var ticker = time.NewTicker(time.Second * 2)
		defer ticker.Stop()

		signal.Notify(sigQ, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

		for daemon.IsAlive() {
			select {
			case sig := <-sigQ:
				fmt.Printf("Quitting on signal %s\n", sig)
				return daemon.Banish()
			case <-ticker.C:
				continue
			}
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&appDir,
		"appdir",
		common.BaseDir,
		"The directory where application-specific files live")
	rootCmd.PersistentFlags().StringVar(
		&cfgPath,
		"config",
		"",
		"Path of the configuration file (default <appdir>/Herald.yaml)")
	rootCmd.PersistentFlags().StringVar(
		&addr,
		"address",
		"",
		fmt.Sprintf("Address to either listen on (serve) or connect to (default localhost:%d)",
			common.DefaultPort))

	rootCmd.AddCommand(serveCmd)
} // func init()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
