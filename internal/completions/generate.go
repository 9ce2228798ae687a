package completions

import (
	"fmt"
	"strings"
)

func flagWords(flags []FlagInfo) []string {
	var words []string
	for _, f := range flags {
		words = append(words, f.Names...)
	}
	return words
}

// GenerateBash completes subcommands by the path typed so far, and flags for
// that command plus the global ones.
func GenerateBash(bin string, commands []CommandInfo) string {
	var b strings.Builder
	fn := "_" + strings.ReplaceAll(bin, "-", "_") + "_completions"
	global := flagWords(commands[0].Flags)

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    local path=\"\" i\n")
	b.WriteString("    for ((i=1; i<COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	b.WriteString("            -*) ;;\n")
	b.WriteString("            *) path=\"${path:+$path }${COMP_WORDS[i]}\" ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")
	b.WriteString("    case \"$path\" in\n")

	for _, cmd := range commands {
		words := append([]string{}, cmd.Subcommands...)
		words = append(words, flagWords(cmd.Flags)...)
		if len(cmd.Path) > 0 {
			words = append(words, global...)
		}

		key := strings.Join(cmd.Path, " ")
		pattern := `""`
		switch {
		case key == "":
		case len(cmd.Subcommands) > 0:
			pattern = fmt.Sprintf("%q", key)
		default:
			// leaves keep completing flags after their arguments
			pattern = fmt.Sprintf("%q|%q*", key, key+" ")
		}

		fmt.Fprintf(&b, "        %s)\n", pattern)
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(words, " "))
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, bin)
	return b.String()
}

// GenerateZsh reuses the bash function through bashcompinit.
func GenerateZsh(bin string, commands []CommandInfo) string {
	return fmt.Sprintf("#compdef %s\n\nautoload -U +X bashcompinit && bashcompinit\n\n%s", bin, GenerateBash(bin, commands))
}

// GenerateFish completes the first two levels of subcommands and every flag.
func GenerateFish(bin string, commands []CommandInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "complete -c %s -f\n", bin)

	for _, cmd := range commands {
		var condition string
		switch len(cmd.Path) {
		case 0:
			condition = "__fish_use_subcommand"
		case 1:
			condition = "__fish_seen_subcommand_from " + cmd.Path[0]
		}

		if condition != "" {
			for _, sub := range cmd.Subcommands {
				summary := ""
				if child := FindCommand(commands, append(append([]string{}, cmd.Path...), sub)); child != nil {
					summary = child.Summary
				}
				fmt.Fprintf(&b, "complete -c %s -n '%s' -a %s -d %s\n", bin, condition, sub, fishQuote(summary))
			}
		}

		for _, f := range cmd.Flags {
			b.WriteString(fishFlag(bin, cmd, f))
		}
	}

	return b.String()
}

func fishFlag(bin string, cmd CommandInfo, f FlagInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "complete -c %s", bin)
	if len(cmd.Path) > 0 {
		fmt.Fprintf(&b, " -n '__fish_seen_subcommand_from %s'", cmd.Path[len(cmd.Path)-1])
	}
	for _, name := range f.Names {
		if long, ok := strings.CutPrefix(name, "--"); ok {
			fmt.Fprintf(&b, " -l %s", long)
		} else if short, ok := strings.CutPrefix(name, "-"); ok {
			fmt.Fprintf(&b, " -s %s", short)
		}
	}
	if f.HasValue {
		b.WriteString(" -r")
	}
	fmt.Fprintf(&b, " -d %s\n", fishQuote(f.Description))
	return b.String()
}

func fishQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
