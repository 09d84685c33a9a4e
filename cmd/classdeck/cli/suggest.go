// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package cli

// suggestCommand returns the closest matching subcommand name for an
// unknown input, or "" when nothing is close. An edit distance of at
// most 3 counts as close, which catches transpositions, dropped
// characters, and extra characters.
func suggestCommand(unknown string, commands []*Command) string {
	bestName := ""
	bestDistance := 4

	for _, command := range commands {
		if distance := editDistance(unknown, command.Name); distance < bestDistance {
			bestDistance = distance
			bestName = command.Name
		}
	}
	return bestName
}

// editDistance computes the Levenshtein distance between two strings
// using a single rolling row of the distance matrix.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		previous := row[0]
		row[0] = j
		for i := 1; i <= len(a); i++ {
			substitution := previous
			if a[i-1] != b[j-1] {
				substitution++
			}
			previous = row[i]
			row[i] = min(row[i]+1, row[i-1]+1, substitution)
		}
	}
	return row[len(a)]
}
