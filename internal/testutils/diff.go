package testutils

import (
	"github.com/pmezard/go-difflib/difflib"
)

// CheckDiff reports a unified diff when expect and actual differ.
func CheckDiff(t TestingT, expect, actual string) {
	t.Helper()

	if expect == actual {
		return
	}

	diff := difflib.UnifiedDiff{
		A:       difflib.SplitLines(expect),
		B:       difflib.SplitLines(actual),
		Context: 5,
	}
	d, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		t.Fatal(err)
	}
	t.Error(d)
}
