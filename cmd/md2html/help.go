package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to HTML")
	fmt.Fprintln(w, "  options    Print the effective conversion options")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "'md2html <input> [flags]' is short for 'md2html convert <input> [flags]'.")
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (\"-\" or none = stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (stdin: default stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --watch               Convert again when inputs change")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "      --set <key=value>     Set any option (repeatable)")
	fmt.Fprintln(w, "      --header-level-start <n>")
	fmt.Fprintln(w, "                            Level of a top-level heading")
	fmt.Fprintln(w, "      --prefix-header-id[=<s>]")
	fmt.Fprintln(w, "                            Prefix header ids (bare flag = \"section-\")")
	fmt.Fprintln(w, "      --no-header-id        Omit heading ids")
	fmt.Fprintln(w, "      --customized-header-id")
	fmt.Fprintln(w, "                            Honor {#id} after heading text")
	fmt.Fprintln(w, "      --gh-compatible-header-id")
	fmt.Fprintln(w, "                            GitHub style heading ids")
	fmt.Fprintln(w, "      --raw-header-id       Keep heading text in ids")
	fmt.Fprintln(w, "      --raw-prefix-header-id")
	fmt.Fprintln(w, "                            Keep the prefix out of id normalization")
	fmt.Fprintln(w, "      --require-space-before-heading-text")
	fmt.Fprintln(w, "                            Only '# text' is a heading")
	fmt.Fprintln(w, "      --literal-mid-word-asterisks")
	fmt.Fprintln(w, "                            Keep ** as text")
	fmt.Fprintln(w, "      --simple-line-breaks  Line breaks become <br />")
	fmt.Fprintln(w, "      --strikethrough       ~~text~~ becomes <del>")
	fmt.Fprintln(w, "      --tables              GitHub tables")
	fmt.Fprintln(w, "      --tasklists           GitHub task lists")
	fmt.Fprintln(w, "      --emoji               :shortcode: becomes an emoji")
	fmt.Fprintln(w, "      --gh-mentions         @user becomes a link")
	fmt.Fprintln(w, "      --gh-mentions-link <s>")
	fmt.Fprintln(w, "                            Mention link template ({u} = user)")
	fmt.Fprintln(w, "      --open-links-in-new-window")
	fmt.Fprintln(w, "                            Links open in a new window")
	fmt.Fprintln(w, "      --highlight-code      Highlight fenced code blocks")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style (default: github)")
	fmt.Fprintln(w, "      --sanitize            Remove unsafe HTML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -s, --standalone          Wrap output in a complete HTML page")
	fmt.Fprintln(w, "      --title <s>           Page title (\"\" = first heading)")
	fmt.Fprintln(w, "      --css <path>          Stylesheet file to embed")
	fmt.Fprintln(w, "      --highlight           Embed the code highlighting stylesheet")
	fmt.Fprintln(w, "      --rewrite-links       Point relative .md links at .html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc                 Insert a table of contents")
	fmt.Fprintln(w, "      --toc-title <s>       TOC heading text")
	fmt.Fprintln(w, "      --toc-min-depth <n>   Min heading depth (1-6)")
	fmt.Fprintln(w, "      --toc-max-depth <n>   Max heading depth (1-6)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG, MD2HTML_OUTPUT_DIR, MD2HTML_CSS, MD2HTML_WORKERS,")
	fmt.Fprintln(w, "  MD2HTML_STANDALONE, MD2HTML_OPTIONS (key=value,key=value)")
}

// printOptionsUsage prints usage for the options command.
func printOptionsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html options [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective conversion options as YAML.")
	fmt.Fprintln(w, "Accepts the convert flags; config, environment and flags are applied.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(deps.Stdout)
	case "options":
		printOptionsUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: md2html version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
