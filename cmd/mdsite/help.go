package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the site from the content directory")
	fmt.Fprintln(w, "  convert    Convert one markdown file to HTML on stdout")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Copy static files to the output directory, then write one HTML page")
	fmt.Fprintln(w, "per markdown file in the content directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directories:")
	fmt.Fprintln(w, "      --content <dir>       Markdown source directory (default: content)")
	fmt.Fprintln(w, "      --static <dir>        Static files directory (default: static)")
	fmt.Fprintln(w, "  -o, --output <dir>        Site output directory (default: public)")
	fmt.Fprintln(w, "      --no-static           Skip copying static files")
	fmt.Fprintln(w)
	printRenderFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --drafts              Publish pages marked draft")
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	printEnvironment(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  mdsite build")
	fmt.Fprintln(w, "  mdsite build --content docs -o site --engine goldmark")
	fmt.Fprintln(w, "  mdsite build -c production --drafts")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite convert <file.md | -> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a single markdown file and print the HTML fragment.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file    Markdown file, or - to read standard input")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --page                Print the complete page instead of the fragment")
	fmt.Fprintln(w)
	printRenderFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  mdsite convert README.md")
	fmt.Fprintln(w, "  echo '# Hi' | mdsite convert - --page")
}

func printRenderFlags(w io.Writer) {
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --engine <name>       Markdown engine: native, goldmark (default: native)")
	fmt.Fprintln(w, "      --template <value>    Template name or .html file path (default: page)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom template directory (<dir>/templates/<name>.html)")
	fmt.Fprintln(w, "      --rewrite-links       Point relative .md links at the generated .html pages")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: mdsite, if present)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed output")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}

func printEnvironment(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSITE_CONFIG, MDSITE_CONTENT_DIR, MDSITE_STATIC_DIR, MDSITE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MDSITE_TEMPLATE, MDSITE_ENGINE, MDSITE_WORKERS")
	fmt.Fprintln(w, "  Flags override environment, which overrides the config file.")
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the mdsite version.")
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
