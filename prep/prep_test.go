package prep

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-logr/logr/testr"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vvakame/gqlprep/internal/log"
	"github.com/vvakame/gqlprep/internal/testutils"
)

// reformat normalizes a document text through the same printer Inline uses.
func reformat(t *testing.T, source string) string {
	t.Helper()

	doc, gErr := parser.ParseQuery(&ast.Source{Input: source})
	if gErr != nil {
		t.Fatal(gErr)
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return buf.String()
}

func TestInline(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx = log.WithLogger(ctx, testr.New(t))

	source := heredoc.Doc(`
		query GetAccount {
			id
			account {
				id
			}
			...F
		}
		fragment F on T {
			id
			account {
				x
			}
		}
	`)

	got, err := Inline(ctx, source)
	if err != nil {
		t.Fatal(err)
	}

	want := reformat(t, heredoc.Doc(`
		query GetAccount {
			id
			account {
				id
				x
			}
		}
	`))
	testutils.CheckDiff(t, want, got)

	if strings.Contains(got, "...") {
		t.Errorf("fragment spread survived inlining:\n%s", got)
	}
	if strings.Contains(got, "fragment ") {
		t.Errorf("fragment definition survived inlining:\n%s", got)
	}
}

func TestInline_syntaxError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx = log.WithLogger(ctx, testr.New(t))

	_, err := Inline(ctx, `query {`)
	if err == nil {
		t.Fatal("want parse error, got nil")
	}
}

func TestInline_unresolvedFragment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx = log.WithLogger(ctx, testr.New(t))

	_, err := Inline(ctx, `query Q { ...Nope }`)
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if !strings.Contains(err.Error(), `unresolved fragment "Nope"`) {
		t.Errorf("error = %v", err)
	}
}

func TestSplitAndGroup(t *testing.T) {
	t.Parallel()

	source := heredoc.Doc(`
		# operations for the account screen

		query AccountQuery {
			account {
				id
			}
		}

		fragment Account_user on User {
			name
		}

		query SettingsQuery {
			settings {
				locale
			}
		}
	`)

	defs, err := Split(source)
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 3 {
		t.Fatalf("definitions = %d, want 3", len(defs))
	}

	files := Group(defs)
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2", len(files))
	}

	if files[0].Filename != "Account.graphql" || files[1].Filename != "Settings.graphql" {
		t.Errorf("filenames = %q, %q", files[0].Filename, files[1].Filename)
	}

	// query first, then the fragment, each behind the generator marker
	account := files[0].Content
	if !strings.HasPrefix(account, "# @genqlient\nquery AccountQuery") {
		t.Errorf("account file does not start with the query:\n%s", account)
	}
	if !strings.Contains(account, "# @genqlient\nfragment Account_user") {
		t.Errorf("account file is missing the fragment:\n%s", account)
	}
	if strings.Index(account, "query AccountQuery") > strings.Index(account, "fragment Account_user") {
		t.Errorf("query should precede fragment:\n%s", account)
	}
}
