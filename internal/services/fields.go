package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Request field types that tolerate the loose shapes the frontend sends:
// numbers as strings, skills as either a list or one comma-delimited
// string, deadlines in date-only or RFC3339 form. Genuinely invalid
// input is rejected at bind time instead of being coerced to a wrong
// value.

// OptionalInt distinguishes "absent" from "zero" and accepts a JSON
// number or a numeric string. Empty strings and nulls count as absent.
type OptionalInt struct {
	Set   bool
	Value int
}

func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	o.Set = true
	o.Value = n
	return nil
}

// OptionalDate accepts "2006-01-02" or RFC3339 and keeps only the date.
type OptionalDate struct {
	Set  bool
	Time time.Time
}

func (d *OptionalDate) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid date %s", b)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q", s)
		}
	}
	d.Set = true
	d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

// SkillList normalizes required skills: a JSON array of strings or one
// comma-delimited string, entries trimmed and empties dropped either way.
type SkillList []string

func (s *SkillList) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		*s = nil
		return nil
	}

	var raw []string
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	} else {
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		raw = strings.Split(one, ",")
	}

	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if entry = strings.TrimSpace(entry); entry != "" {
			out = append(out, entry)
		}
	}
	*s = out
	return nil
}
