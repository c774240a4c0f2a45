/**
 * Copyright (c) 2026, The Nexus Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"fmt"
	"os"
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wanxger/nexus/config"
	"github.com/wanxger/nexus/lint"
)

var lintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Lint GraphQL SDL files",
	Long: "Checks SDL files against schema style rules. Without arguments the files come from " +
		"the schema globs in nexus.yml.",
	RunE: runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		files, err = cfg.SchemaFiles(".")
		if err != nil {
			return err
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no schema files matched; check the schema globs in %s", config.DefaultFileName)
	}

	issues, err := lintFiles(files, cfg.LintOptions())
	if err != nil {
		return err
	}

	if err := printIssues(issues); err != nil {
		return err
	}

	for _, issue := range issues {
		if issue.Severity == lint.SeverityError {
			return fmt.Errorf("%d issue(s) found", len(issues))
		}
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err != nil {
			// No config file; fall back to the defaults.
			return config.Default(), nil
		}
		path = config.DefaultFileName
	}
	return config.Load(path)
}

// lintFiles lints every file concurrently and returns the issues sorted by file and line.
func lintFiles(files []string, opts lint.Options) ([]lint.Issue, error) {
	var (
		mu     sync.Mutex
		issues []lint.Issue
	)

	var group errgroup.Group
	group.SetLimit(8)

	for _, file := range files {
		file := file
		group.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			found, err := lint.File(file, string(data), opts)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			mu.Lock()
			issues = append(issues, found...)
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].File != issues[j].File {
			return issues[i].File < issues[j].File
		}
		return issues[i].Line < issues[j].Line
	})
	return issues, nil
}

func printIssues(issues []lint.Issue) error {
	if flagFormat == "json" {
		stream := jsoniter.ConfigDefault.BorrowStream(os.Stdout)
		defer jsoniter.ConfigDefault.ReturnStream(stream)

		stream.WriteVal(issues)
		stream.WriteRaw("\n")
		return stream.Flush()
	}

	for _, issue := range issues {
		fmt.Println(issue)
	}
	if len(issues) == 0 {
		fmt.Println("No issues found.")
	}
	return nil
}
