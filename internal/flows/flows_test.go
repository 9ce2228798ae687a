package flows

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangjing53406/navi/internal/cheat"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/finder"
)

const dockerCheats = `% docker

# List containers
docker ps -a

# Run an image
docker run <image> -p <port>:<port>

# Remove an image
docker rmi <image_id>

$ image_id: docker images --- --column 3
`

func TestCore_PrintsChosenSnippet(t *testing.T) {
	h := newHarness(t)
	h.cheats = mustParse(t, dockerCheats)
	h.finder.pick = pickContaining("List containers")

	err := h.flows.Core(domain.VariantCore(), domain.Config{Print: true}, true)

	require.NoError(t, err)
	require.Equal(t, "docker ps -a\n", h.out.String())
	require.Empty(t, h.ran)

	opts := h.finder.opts[0]
	require.Equal(t, "snippet", opts.Prompt)
	require.Equal(t, "\t", opts.Delimiter)
	require.Equal(t, `"/usr/local/bin/navi" preview {}`, opts.Preview)
	require.Len(t, h.finder.lines[0], 3)
}

func TestCore_RunsInShell(t *testing.T) {
	h := newHarness(t)
	h.cheats = mustParse(t, dockerCheats)

	require.NoError(t, h.flows.Core(domain.VariantCore(), domain.Config{}, true))
	require.Equal(t, []string{"bash: docker ps -a"}, h.ran)

	h.ran = nil
	require.NoError(t, h.flows.Core(domain.VariantCore(), domain.Config{Shell: "zsh"}, true))
	require.Equal(t, []string{"zsh: docker ps -a"}, h.ran)
}

func TestQuery_PassesInitialQuery(t *testing.T) {
	h := newHarness(t)
	h.cheats = mustParse(t, dockerCheats)

	require.NoError(t, h.flows.Query("rmi", domain.Config{Print: true}))
	require.Equal(t, "rmi", h.finder.opts[0].Query)
}

func TestBest_FillsArgsWithoutFinder(t *testing.T) {
	h := newHarness(t)
	h.cheats = mustParse(t, dockerCheats)

	err := h.flows.Best("run image", []string{"nginx", "8080"}, domain.Config{Print: true})

	require.NoError(t, err)
	require.Equal(t, "docker run nginx -p 8080:8080\n", h.out.String())
	require.Empty(t, h.finder.opts)
}

func TestBest_MissingValueFails(t *testing.T) {
	h := newHarness(t)
	h.cheats = mustParse(t, dockerCheats)

	err := h.flows.Best("run image", []string{"nginx"}, domain.Config{Print: true})

	require.ErrorContains(t, err, "<port>")
}

func TestBest_NoMatch(t *testing.T) {
	h := newHarness(t)
	h.cheats = mustParse(t, dockerCheats)

	err := h.flows.Best("kubectl", nil, domain.Config{})

	require.ErrorIs(t, err, ErrNoMatch)
}

func TestBest_TakesFirstSuggestion(t *testing.T) {
	h := newHarness(t)
	h.cheats = mustParse(t, dockerCheats)
	h.shell["docker images"] = "nginx  latest  abc123\nredis  7  def456\n"

	require.NoError(t, h.flows.Best("remove image", nil, domain.Config{Print: true}))
	require.Equal(t, "docker rmi abc123\n", h.out.String())
}

func TestCore_VariableSources(t *testing.T) {
	h := newHarness(t)
	h.cheats = mustParse(t, `% misc
# Greet
echo <greeting> <name> <suffix>
$ greeting: printf 'hi  1\nhello  2\n' --- --column 1 --map "tr a-z A-Z"
`)
	h.env["name"] = "navi"
	h.shell["printf 'hi  1\\nhello  2\\n'"] = "hi  1\nhello  2\n"
	h.prompts["suffix"] = "!"
	h.finder.pick = func(lines []string, opts domain.FinderOptions) (string, error) {
		if opts.Prompt == "greeting" {
			return lines[1], nil
		}
		return lines[0], nil
	}

	require.NoError(t, h.flows.Core(domain.VariantCore(), domain.Config{Print: true}, true))
	require.Equal(t, "echo HELLO navi !\n", h.out.String())
}

const branchCheats = `% git

# Delete branches
git branch -D <branches>

# Checkout
git checkout <branch>

# Tag
git tag <tag>

$ branches: git branch --- --column 2 --multi --prevent-extra
$ branch: git branch --- --column 2
$ tag: git tag --- --prevent-extra
`

func TestCore_SuggestionOptions(t *testing.T) {
	tests := []struct {
		name     string
		snippet  string
		pick     string
		wantOpts domain.FinderOptions
		want     string
	}{
		{
			name:     "multi joins every pick",
			snippet:  "Delete branches",
			pick:     "current  main\nother  dev",
			wantOpts: domain.FinderOptions{Prompt: "branches", Multi: true},
			want:     "git branch -D main dev\n",
		},
		{
			name:     "typed value is used verbatim",
			snippet:  "Checkout",
			pick:     "feature/new",
			wantOpts: domain.FinderOptions{Prompt: "branch", AcceptQuery: true},
			want:     "git checkout feature/new\n",
		},
		{
			name:     "picked suggestion is narrowed",
			snippet:  "Checkout",
			pick:     "other  dev",
			wantOpts: domain.FinderOptions{Prompt: "branch", AcceptQuery: true},
			want:     "git checkout dev\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.cheats = mustParse(t, branchCheats)
			h.shell["git branch"] = "current  main\nother  dev\n"
			h.finder.pick = func(lines []string, opts domain.FinderOptions) (string, error) {
				if opts.Prompt == "snippet" {
					return pickContaining(tt.snippet)(lines, opts)
				}
				return tt.pick, nil
			}

			require.NoError(t, h.flows.Core(domain.VariantCore(), domain.Config{Print: true}, true))

			require.Equal(t, tt.want, h.out.String())
			require.Equal(t, tt.wantOpts, h.finder.opts[1])
		})
	}
}

func TestCore_PreventExtraWithoutSuggestions(t *testing.T) {
	h := newHarness(t)
	h.cheats = mustParse(t, branchCheats)
	h.shell["git tag"] = ""
	h.finder.pick = pickContaining("Tag")

	err := h.flows.Core(domain.VariantCore(), domain.Config{Print: true}, true)

	require.ErrorContains(t, err, "<tag>")
	require.ErrorContains(t, err, "no suggestions")
}

func TestCore_FinderCancelPropagates(t *testing.T) {
	h := newHarness(t)
	h.cheats = mustParse(t, dockerCheats)
	h.finder.pick = func([]string, domain.FinderOptions) (string, error) { return "", finder.ErrCancelled }

	err := h.flows.Core(domain.VariantCore(), domain.Config{}, true)

	require.ErrorIs(t, err, finder.ErrCancelled)
	require.Empty(t, h.ran)
}

func TestCore_LoadError(t *testing.T) {
	h := newHarness(t)
	h.flows.deps.LoadCheats = func([]string) ([]cheat.Cheat, error) { return nil, errors.New("boom") }

	err := h.flows.Core(domain.VariantCore(), domain.Config{}, true)

	require.ErrorContains(t, err, "load cheatsheets: boom")
}

func TestCore_NoCheatsShowsWelcome(t *testing.T) {
	h := newHarness(t)
	h.finder.pick = pickContaining("Browse featured")

	require.NoError(t, h.flows.Core(domain.VariantCore(), domain.Config{Print: true}, true))
	require.Equal(t, "navi repo browse\n", h.out.String())
}

func TestPreview(t *testing.T) {
	h := newHarness(t)
	line := mustParse(t, dockerCheats)[1].Line()

	require.NoError(t, h.flows.Preview(line))
	require.Equal(t, "# Run an image\n[docker]\ndocker run <image> -p <port>:<port>\n", h.out.String())
}

func TestPreview_InvalidLine(t *testing.T) {
	h := newHarness(t)
	require.ErrorContains(t, h.flows.Preview("not a cheat"), "invalid preview line")
}

func TestSearch(t *testing.T) {
	h := newHarness(t)
	h.http["https://cheat.sh/~tar%20list"] = "\x1b[38;5;246m# List an archive\x1b[0m\ntar -tf <file>\n\n# Extract\ntar -xf <file>\n"
	h.prompts["file"] = "a.tar"

	err := h.flows.Search("tar list", domain.Config{Print: true})

	require.NoError(t, err)
	require.Equal(t, "tar -tf a.tar\n", h.out.String())
	require.Len(t, h.finder.lines[0], 2)
	require.True(t, strings.HasPrefix(h.finder.lines[0][0], "tar list\tList an archive"))
}

func TestSearch_CustomURLAndEmpty(t *testing.T) {
	h := newHarness(t)
	h.http["https://example.com/q/tar"] = "\n\n"

	err := h.flows.Search("tar", domain.Config{SearchURL: "https://example.com/q/"})

	require.ErrorContains(t, err, "no online cheatsheets found for tar")
}

func TestSearch_HTTPError(t *testing.T) {
	h := newHarness(t)
	require.ErrorContains(t, h.flows.Search("tar", domain.Config{}), "404")
}

func TestWidget(t *testing.T) {
	for shell, marker := range map[string]string{
		"bash": "bind -x",
		"zsh":  "zle -N _navi_widget",
		"fish": "_navi_smart_replace",
	} {
		t.Run(shell, func(t *testing.T) {
			h := newHarness(t)
			require.NoError(t, h.flows.Widget(shell))
			require.Contains(t, h.out.String(), marker)
			require.Contains(t, h.out.String(), "widget::last_command")
		})
	}
}

func TestWidget_UnknownShell(t *testing.T) {
	h := newHarness(t)
	require.ErrorContains(t, h.flows.Widget("elvish"), `unsupported shell "elvish"`)
}

func TestFunc(t *testing.T) {
	tests := []struct {
		name    string
		fn      string
		args    []string
		stdin   string
		want    string
		wantErr string
	}{
		{name: "last command", fn: "widget::last_command", args: []string{"git status | grep x && ls -la"}, want: "ls -la\n"},
		{name: "last command single", fn: "widget::last_command", args: []string{"docker", "ps"}, want: "docker ps\n"},
		{name: "map expand", fn: "map::expand", stdin: `a "b c" 'd'` + "\ne\n", want: "a\nb c\nd\ne\n"},
		{name: "url open without url", fn: "url::open", wantErr: "missing URL"},
		{name: "unknown", fn: "nope", wantErr: `unknown function "nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.flows.deps.Stdin = strings.NewReader(tt.stdin)

			err := h.flows.Func(tt.fn, tt.args)

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, h.out.String())
		})
	}
}

func TestFunc_URLOpen(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.flows.Func("url::open", []string{"https://github.com/denisidoro/navi"}))
	require.Equal(t, []string{"https://github.com/denisidoro/navi"}, h.opened)
}

func TestFunc_Welcome(t *testing.T) {
	h := newHarness(t)
	h.config["shell"] = "zsh"
	h.finder.pick = pickContaining("cheats_path")

	require.NoError(t, h.flows.Func("welcome", nil))
	require.Equal(t, []string{"zsh: navi config get cheats_path"}, h.ran)
}

func TestFunctionNames(t *testing.T) {
	require.Equal(t, []string{"map::expand", "url::open", "welcome", "widget::last_command"}, FunctionNames())
}
