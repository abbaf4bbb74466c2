// Package matching scores how compatible two profiles are from their focus areas
// and interests, and ranks candidate profiles for the Match page.
package matching

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTagInput is returned when a tag collection is not a list of non-empty strings.
var ErrInvalidTagInput = errors.New("matching: invalid tag input")

// TagSet is an ordered collection of distinct tags.
type TagSet []string

// NewTagSet builds a TagSet, keeping the first occurrence of each tag.
func NewTagSet(tags ...string) TagSet {
	out := make(TagSet, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Contains reports whether tag is in the set.
func (s TagSet) Contains(tag string) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}

// Intersect returns the tags of s that are also in other, in s's order.
func (s TagSet) Intersect(other TagSet) TagSet {
	out := make(TagSet, 0)
	for _, t := range s {
		if other.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// ProfileTags is the scorer input attached to one user.
type ProfileTags struct {
	FocusAreas TagSet `json:"focus_areas"`
	Interests  TagSet `json:"interests"`
}

// ParseTagSet normalizes raw tag data coming from a profile row or request body.
// nil is an empty set. Accepted shapes are []string, []any holding strings, TagSet,
// and JSON-encoded string arrays ([]byte, json.RawMessage, string).
func ParseTagSet(raw any) (TagSet, error) {
	switch v := raw.(type) {
	case nil:
		return TagSet{}, nil
	case TagSet:
		return normalize([]string(v))
	case []string:
		return normalize(v)
	case []any:
		tags := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T, not a string", ErrInvalidTagInput, i, item)
			}
			tags = append(tags, s)
		}
		return normalize(tags)
	case json.RawMessage:
		return parseJSON(v)
	case []byte:
		return parseJSON(v)
	case string:
		return parseJSON([]byte(v))
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidTagInput, raw)
	}
}

// ParseProfileTags parses both tag categories of a profile.
func ParseProfileTags(focusAreas, interests any) (ProfileTags, error) {
	focus, err := ParseTagSet(focusAreas)
	if err != nil {
		return ProfileTags{}, fmt.Errorf("focus areas: %w", err)
	}
	ints, err := ParseTagSet(interests)
	if err != nil {
		return ProfileTags{}, fmt.Errorf("interests: %w", err)
	}
	return ProfileTags{FocusAreas: focus, Interests: ints}, nil
}

func parseJSON(data []byte) (TagSet, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return TagSet{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(trimmed), &tags); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTagInput, err)
	}
	return normalize(tags)
}

func normalize(tags []string) (TagSet, error) {
	cleaned := make([]string, 0, len(tags))
	for i, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, fmt.Errorf("%w: element %d is empty", ErrInvalidTagInput, i)
		}
		cleaned = append(cleaned, t)
	}
	return NewTagSet(cleaned...), nil
}
