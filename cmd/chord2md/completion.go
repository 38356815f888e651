package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// flagCompletion describes how a flag's value completes.
type flagCompletion int

const (
	completeNone   flagCompletion = iota // free-form or boolean
	completeFile                         // any file path
	completeDir                          // directory path
	completeFormat                       // md, html, pdf
)

// flagDef is the completion-relevant slice of one flag.
type flagDef struct {
	name      string
	shorthand string
	usage     string
	isBool    bool
	comp      flagCompletion
}

// completionValues marks flags whose values are paths or enums.
var completionValues = map[string]flagCompletion{
	"config": completeFile,
	"css":    completeFile,
	"output": completeDir,
	"format": completeFormat,
}

// formatValues are the --format completions.
var formatValues = []string{"md", "html", "pdf"}

// subcommands lists completable commands with descriptions.
var subcommands = []struct{ name, desc string }{
	{"convert", "convert chord charts"},
	{"version", "print the version"},
	{"completion", "emit a shell completion script"},
	{"doctor", "diagnose the rendering environment"},
	{"help", "show usage"},
}

// convertFlagDefs extracts completion metadata from the real FlagSet so
// generated scripts cannot drift from the parser.
func convertFlagDefs() []flagDef {
	var defs []flagDef
	fs := buildConvertFlagSet(&convertFlags{})
	fs.VisitAll(func(f *flag.Flag) {
		defs = append(defs, flagDef{
			name:      f.Name,
			shorthand: f.Shorthand,
			usage:     f.Usage,
			isBool:    f.Value.Type() == "bool",
			comp:      completionValues[f.Name],
		})
	})
	return defs
}

// runCompletion implements the completion subcommand.
func runCompletion(args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: chord2md completion <bash|zsh|fish|powershell>", ErrUnsupportedShell)
	}
	return GenerateCompletion(w, args[0])
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell string) error {
	defs := convertFlagDefs()
	switch shell {
	case "bash":
		return generateBash(w, defs)
	case "zsh":
		return generateZsh(w, defs)
	case "fish":
		return generateFish(w, defs)
	case "powershell":
		return generatePowerShell(w, defs)
	default:
		return fmt.Errorf("%w: %q (want bash, zsh, fish, or powershell)", ErrUnsupportedShell, shell)
	}
}

func generateBash(w io.Writer, defs []flagDef) error {
	var flagWords []string
	var caseArms strings.Builder
	for _, d := range defs {
		flagWords = append(flagWords, "--"+d.name)
		pattern := "--" + d.name
		if d.shorthand != "" {
			flagWords = append(flagWords, "-"+d.shorthand)
			pattern += "|-" + d.shorthand
		}
		switch d.comp {
		case completeFormat:
			fmt.Fprintf(&caseArms, "    %s) COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") ); return ;;\n",
				pattern, strings.Join(formatValues, " "))
		case completeFile:
			fmt.Fprintf(&caseArms, "    %s) COMPREPLY=( $(compgen -f -- \"$cur\") ); return ;;\n", pattern)
		case completeDir:
			fmt.Fprintf(&caseArms, "    %s) COMPREPLY=( $(compgen -d -- \"$cur\") ); return ;;\n", pattern)
		}
	}

	var commands []string
	for _, c := range subcommands {
		commands = append(commands, c.name)
	}

	_, err := fmt.Fprintf(w, `# bash completion for chord2md
_chord2md() {
  local cur prev
  cur="${COMP_WORDS[COMP_CWORD]}"
  prev="${COMP_WORDS[COMP_CWORD-1]}"

  if [[ $COMP_CWORD -eq 1 && "$cur" != -* ]]; then
    COMPREPLY=( $(compgen -W "%s" -- "$cur") )
    return
  fi

  case "$prev" in
    completion) COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- "$cur") ); return ;;
    help) COMPREPLY=( $(compgen -W "convert" -- "$cur") ); return ;;
%s  esac

  if [[ "$cur" == -* ]]; then
    COMPREPLY=( $(compgen -W "%s" -- "$cur") )
    return
  fi

  COMPREPLY=( $(compgen -f -- "$cur") )
}
complete -F _chord2md chord2md
`, strings.Join(commands, " "), caseArms.String(), strings.Join(flagWords, " "))
	return err
}

func generateZsh(w io.Writer, defs []flagDef) error {
	var specs strings.Builder
	for _, d := range defs {
		action := ""
		if !d.isBool {
			switch d.comp {
			case completeFormat:
				action = ": :(" + strings.Join(formatValues, " ") + ")"
			case completeFile:
				action = ": :_files"
			case completeDir:
				action = ": :_files -/"
			case completeNone:
				action = ": :"
			}
		}
		usage := zshSanitize(d.usage)
		if d.shorthand != "" {
			fmt.Fprintf(&specs, "        '(-%s --%s)'{-%s,--%s}'[%s]%s' \\\n",
				d.shorthand, d.name, d.shorthand, d.name, usage, action)
		} else {
			fmt.Fprintf(&specs, "        '--%s[%s]%s' \\\n", d.name, usage, action)
		}
	}

	var commands strings.Builder
	for _, c := range subcommands {
		fmt.Fprintf(&commands, "    '%s:%s'\n", c.name, c.desc)
	}

	_, err := fmt.Fprintf(w, `#compdef chord2md
# zsh completion for chord2md

_chord2md() {
  local -a commands
  commands=(
%s  )

  _arguments -C '1: :->command' '*:: :->args' && return

  case $state in
    command)
      _describe -t commands 'chord2md command' commands
      ;;
    args)
      case $words[1] in
        completion)
          _values 'shell' bash zsh fish powershell
          ;;
        help)
          _values 'command' convert
          ;;
        *)
          _arguments \
%s            '*: :_files'
          ;;
      esac
      ;;
  esac
}

_chord2md "$@"
`, commands.String(), specs.String())
	return err
}

// zshSanitize strips characters that terminate a zsh optspec
// description early.
func zshSanitize(usage string) string {
	r := strings.NewReplacer("[", "(", "]", ")", ":", "", "'", "")
	return r.Replace(usage)
}

func generateFish(w io.Writer, defs []flagDef) error {
	var b strings.Builder
	b.WriteString("# fish completion for chord2md\n")
	for _, c := range subcommands {
		fmt.Fprintf(&b, "complete -c chord2md -n __fish_use_subcommand -a %s -d '%s'\n", c.name, c.desc)
	}
	b.WriteString("complete -c chord2md -n '__fish_seen_subcommand_from completion' -xa 'bash zsh fish powershell'\n")
	b.WriteString("complete -c chord2md -n '__fish_seen_subcommand_from help' -xa convert\n")
	for _, d := range defs {
		fmt.Fprintf(&b, "complete -c chord2md -l %s", d.name)
		if d.shorthand != "" {
			fmt.Fprintf(&b, " -s %s", d.shorthand)
		}
		fmt.Fprintf(&b, " -d '%s'", strings.ReplaceAll(d.usage, "'", ""))
		switch d.comp {
		case completeFormat:
			b.WriteString(" -xa '" + strings.Join(formatValues, " ") + "'")
		case completeFile:
			b.WriteString(" -r")
		case completeDir:
			b.WriteString(" -xa '(__fish_complete_directories)'")
		default:
			if !d.isBool {
				b.WriteString(" -r")
			}
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func generatePowerShell(w io.Writer, defs []flagDef) error {
	var words []string
	for _, c := range subcommands {
		words = append(words, "'"+c.name+"'")
	}
	for _, d := range defs {
		words = append(words, "'--"+d.name+"'")
	}

	_, err := fmt.Fprintf(w, `# powershell completion for chord2md
Register-ArgumentCompleter -Native -CommandName chord2md -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    $words = @(%s)
    $prev = $commandAst.CommandElements[-1].ToString()
    if ($prev -eq '--format') { $words = @('md', 'html', 'pdf') }
    if ($prev -eq 'completion') { $words = @('bash', 'zsh', 'fish', 'powershell') }
    $words | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`, strings.Join(words, ", "))
	return err
}
