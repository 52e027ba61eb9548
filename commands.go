// /home/krylon/go/src/github.com/blicero/herald/commands.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 21:32:07 krylon>

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blicero/herald/clients/clientlib"
	"github.com/blicero/herald/objects"
	"github.com/spf13/cobra"
)

var (
	addDescription, addPriority, addCategory string
	addRecurring                             bool
	listCategory                             string
)

func connect() (*clientlib.Client, error) {
	return clientlib.NewClient(cfg.Listen)
} // func connect() (*clientlib.Client, error)

func printEvent(w io.Writer, ev *objects.Event) {
	var flags = make([]string, 0, 2)

	if ev.Recurring {
		flags = append(flags, "recurring")
	}
	if ev.Notified {
		flags = append(flags, "notified")
	}

	fmt.Fprintf(w, "%s  %s  %-6s  %s",
		ev.ID,
		ev.FormattedTime(),
		ev.Priority,
		ev.Title)

	if ev.Category != "" {
		fmt.Fprintf(w, " [%s]", ev.Category)
	}
	if len(flags) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(flags, ", "))
	}

	fmt.Fprintln(w)
} // func printEvent(w io.Writer, ev *objects.Event)

var addCmd = &cobra.Command{
	Use:   "add <title> <time>",
	Short: "Schedule a new event",
	Long: `Schedule a new event. The time is given as local time,
e.g. 2026-10-17T14:30 or "2026-10-17 14:30".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			err error
			c   *clientlib.Client
			ev  *objects.Event
		)

		if c, err = connect(); err != nil {
			return err
		} else if ev, err = c.SubmitEvent(&objects.EventRequest{
			Title:       args[0],
			EventTime:   args[1],
			Description: addDescription,
			Priority:    addPriority,
			Category:    addCategory,
			IsRecurring: addRecurring,
		}); err != nil {
			return err
		}

		printEvent(os.Stdout, ev)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scheduled events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			err    error
			c      *clientlib.Client
			events []objects.Event
		)

		if c, err = connect(); err != nil {
			return err
		} else if events, err = c.ListEvents(listCategory); err != nil {
			return err
		}

		for idx := range events {
			printEvent(os.Stdout, &events[idx])
		}

		return nil
	},
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the event that comes up next",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			err error
			c   *clientlib.Client
			ev  *objects.Event
		)

		if c, err = connect(); err != nil {
			return err
		} else if ev, err = c.NextEvent(); err != nil {
			return err
		} else if ev == nil {
			fmt.Println("No events are scheduled.")
			return nil
		}

		printEvent(os.Stdout, ev)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var c, err = connect()

		if err != nil {
			return err
		}

		return c.DeleteEvent(args[0])
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Longer description of the event")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority: high, medium or low")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category of the event")
	addCmd.Flags().BoolVarP(&addRecurring, "recurring", "r", false, "Mark the event as recurring")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only list events in this category")

	rootCmd.AddCommand(addCmd, listCmd, nextCmd, rmCmd)
} // func init()
