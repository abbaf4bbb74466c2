// Package leaderboard turns the flat ranking rows of one week into per-category boards.
package leaderboard

import "sort"

// Entry is one user's score in one category for a week.
type Entry struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
	FullName string `json:"full_name,omitempty"`
	Avatar   string `json:"avatar_url,omitempty"`
}

// Position is where a user stands on one category board.
type Position struct {
	Category     string `json:"category"`
	Rank         int    `json:"rank"`
	Score        int    `json:"score"`
	Participants int    `json:"participants"`
}

// GroupByCategory builds one board per category. Boards are sorted by score
// descending with ties kept in input order, and ranks are assigned by position
// starting at 1. Rows whose category is not listed are ignored. Every listed
// category is present in the result, possibly with an empty board.
func GroupByCategory(rows []Entry, categories []string) map[string][]Entry {
	boards := make(map[string][]Entry, len(categories))
	for _, c := range categories {
		boards[c] = make([]Entry, 0)
	}

	for _, r := range rows {
		board, ok := boards[r.Category]
		if !ok {
			continue
		}
		boards[r.Category] = append(board, r)
	}

	for c, board := range boards {
		sort.SliceStable(board, func(i, j int) bool {
			return board[i].Score > board[j].Score
		})
		for i := range board {
			board[i].Rank = i + 1
		}
		boards[c] = board
	}
	return boards
}

// UserPositions lists the user's standing on every board they appear on,
// in the order of categories.
func UserPositions(boards map[string][]Entry, categories []string, userID string) []Position {
	positions := make([]Position, 0)
	for _, c := range categories {
		board := boards[c]
		for _, e := range board {
			if e.UserID != userID {
				continue
			}
			positions = append(positions, Position{
				Category:     c,
				Rank:         e.Rank,
				Score:        e.Score,
				Participants: len(board),
			})
			break
		}
	}
	return positions
}
