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

package util

import (
	"math"
	"sort"
	"strings"
)

// SuggestionList, given an invalid input string and a list of valid options, returns a filtered
// list of valid options sorted based on their similarity with the input.
func SuggestionList(input string, options []string) []string {
	if len(options) == 0 {
		return nil
	}

	var (
		suggestions []string
		distances   = map[string]int{}
	)

	inputThreshold := float64(len(input)) / 2.0
	for _, option := range options {
		distance := lexicalDistance(input, option)
		threshold := math.Max(math.Max(inputThreshold, float64(len(option))/2.0), 1)
		if float64(distance) <= threshold {
			suggestions = append(suggestions, option)
			distances[option] = distance
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return distances[suggestions[i]] < distances[suggestions[j]]
	})
	return suggestions
}

// lexicalDistance computes the edit distance between two strings: the minimum number of
// insertions, deletions or substitutions of a single character needed to transform one into the
// other. A case change of the whole string counts as a single edit which helps identify mis-cased
// values with a distance of 1.
func lexicalDistance(aStr string, bStr string) int {
	if aStr == bStr {
		return 0
	}

	a := strings.ToLower(aStr)
	b := strings.ToLower(bStr)
	if a == b {
		// Any case change counts as a single edit.
		return 1
	}

	aLength := len(a)
	bLength := len(b)

	// Two rolling rows of the distance matrix.
	prev := make([]int, bLength+1)
	cur := make([]int, bLength+1)
	for j := 0; j <= bLength; j++ {
		prev[j] = j
	}

	for i := 1; i <= aLength; i++ {
		cur[0] = i
		for j := 1; j <= bLength; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			d := prev[j] + 1
			if cur[j-1]+1 < d {
				d = cur[j-1] + 1
			}
			if prev[j-1]+cost < d {
				d = prev[j-1] + cost
			}
			cur[j] = d
		}
		prev, cur = cur, prev
	}

	return prev[bLength]
}
