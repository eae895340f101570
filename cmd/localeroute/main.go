package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-localeroute"
	"github.com/goliatone/go-localeroute/cmd/localeroute/internal/bootstrap"
	"github.com/goliatone/go-localeroute/internal/logging"
)

var moduleBuilder = bootstrap.BuildModule

const usage = `usage: localeroute <command> [flags] [args]

commands:
  detect <path>                  print the language of path
  classify <path>                print the page kinds of path
  normalize <path>               canonicalise path
  tag <tag> <lang>               print the tag page path
  post <slug> <lang>             print the post path
  switch <path> <from> <to>      rewrite path into another language
  next <path>                    rewrite path into the next language
  alternates <path>              print absolute alternate URLs
  routes                         list every static route
  sitemap                        print sitemap.xml
  robots                         print robots.txt`

var errUsage = errors.New(usage)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("localeroute: %v", err)
	}
}

type commandFunc func(ctx context.Context, module *bootstrap.Module, fs *flag.FlagSet, out io.Writer) error

type command struct {
	args  int
	flags func(fs *flag.FlagSet)
	run   commandFunc
}

var commands = map[string]command{
	"detect":     {args: 1, run: runDetect},
	"classify":   {args: 1, run: runClassify},
	"normalize":  {args: 1, flags: normalizeFlags, run: runNormalize},
	"tag":        {args: 2, run: runTag},
	"post":       {args: 2, run: runPost},
	"switch":     {args: 3, run: runSwitch},
	"next":       {args: 1, flags: nextFlags, run: runNext},
	"alternates": {args: 1, run: runAlternates},
	"routes":     {args: 0, run: runRoutes},
	"sitemap":    {args: 0, run: runSitemap},
	"robots":     {args: 0, run: runRobots},
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q\n%s", name, usage)
	}

	fs := flag.NewFlagSet("localeroute "+name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "Path to a YAML or TOML configuration file")
	defaultLocale := fs.String("default-locale", "", "Default locale (overrides config)")
	locales := fs.String("locales", "", "Comma separated list of every locale (overrides config)")
	basePath := fs.String("base", "", "Deployment base path (overrides config)")
	mode := fs.String("mode", "", "Detection mode: bare-default or prefix-default")
	siteURL := fs.String("site-url", "", "Site origin used for absolute URLs")
	contentDir := fs.String("content-dir", "", "Directory holding Markdown posts")
	verbose := fs.Bool("v", false, "Log debug output to stderr")
	if cmd.flags != nil {
		cmd.flags(fs)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if fs.NArg() != cmd.args {
		return fmt.Errorf("%s: expected %d argument(s), got %d\n%s", name, cmd.args, fs.NArg(), usage)
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath:    *configPath,
		DefaultLocale: *defaultLocale,
		Locales:       bootstrap.SplitLocales(*locales),
		BasePath:      *basePath,
		DetectionMode: *mode,
		SiteURL:       *siteURL,
		ContentDir:    *contentDir,
		Verbose:       *verbose,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Module == nil {
		return fmt.Errorf("bootstrap module: module not configured")
	}
	if module.Logger == nil {
		module.Logger = logging.NoOp()
	}

	module.Logger.Debug("cli.command", "command", name, "args", fs.Args())
	return cmd.run(context.Background(), module, fs, out)
}

func runDetect(_ context.Context, m *bootstrap.Module, fs *flag.FlagSet, out io.Writer) error {
	lang, ok := m.Module.DetectLanguage(fs.Arg(0))
	if !ok {
		return fmt.Errorf("detect: path %q is not localized", fs.Arg(0))
	}
	_, err := fmt.Fprintln(out, lang)
	return err
}

func runClassify(_ context.Context, m *bootstrap.Module, fs *flag.FlagSet, out io.Writer) error {
	info := m.Module.PageInfo(fs.Arg(0))
	var kinds []string
	for _, k := range []struct {
		name string
		set  bool
	}{
		{"home", info.Kind.Home},
		{"post", info.Kind.Post},
		{"tag", info.Kind.Tag},
		{"about", info.Kind.About},
	} {
		if k.set {
			kinds = append(kinds, k.name)
		}
	}
	if len(kinds) == 0 {
		kinds = []string{"none"}
	}
	lang := info.CurrentLang
	if !info.Localized {
		lang = "-"
	}
	_, err := fmt.Fprintf(out, "lang=%s kind=%s\n", lang, strings.Join(kinds, ","))
	return err
}

func normalizeFlags(fs *flag.FlagSet) {
	fs.Bool("leading", true, "Keep a leading slash")
	fs.Bool("trailing", true, "Keep a trailing slash")
	fs.Bool("with-base", false, "Include the base path")
}

func runNormalize(_ context.Context, m *bootstrap.Module, fs *flag.FlagSet, out io.Writer) error {
	_, err := fmt.Fprintln(out, m.Module.Normalize(fs.Arg(0),
		localeroute.WithLeadingSlash(boolFlag(fs, "leading")),
		localeroute.WithTrailingSlash(boolFlag(fs, "trailing")),
		localeroute.WithBase(boolFlag(fs, "with-base")),
	))
	return err
}

func runTag(_ context.Context, m *bootstrap.Module, fs *flag.FlagSet, out io.Writer) error {
	_, err := fmt.Fprintln(out, m.Module.TagPath(fs.Arg(0), fs.Arg(1)))
	return err
}

func runPost(_ context.Context, m *bootstrap.Module, fs *flag.FlagSet, out io.Writer) error {
	_, err := fmt.Fprintln(out, m.Module.PostPath(fs.Arg(0), fs.Arg(1)))
	return err
}

func runSwitch(_ context.Context, m *bootstrap.Module, fs *flag.FlagSet, out io.Writer) error {
	target, err := m.Module.AlternativeLangPath(fs.Arg(0), fs.Arg(1), fs.Arg(2))
	if err != nil {
		return fmt.Errorf("switch: %w", err)
	}
	_, err = fmt.Fprintln(out, target)
	return err
}

func nextFlags(fs *flag.FlagSet) {
	fs.String("supported", "", "Comma separated subset of languages to cycle through")
}

func runNext(_ context.Context, m *bootstrap.Module, fs *flag.FlagSet, out io.Writer) error {
	var supported []string
	if raw := fs.Lookup("supported").Value.String(); strings.TrimSpace(raw) != "" {
		supported = bootstrap.SplitLocales(raw)
	}
	target, err := m.Module.NextLangPath(fs.Arg(0), supported)
	if err != nil {
		return fmt.Errorf("next: %w", err)
	}
	_, err = fmt.Fprintln(out, target)
	return err
}

func runAlternates(_ context.Context, m *bootstrap.Module, fs *flag.FlagSet, out io.Writer) error {
	alternates, err := m.Module.Alternates(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("alternates: %w", err)
	}
	for _, alt := range alternates {
		if _, err := fmt.Fprintf(out, "%s %s\n", alt.Lang, alt.Href); err != nil {
			return err
		}
	}
	return nil
}

func runRoutes(ctx context.Context, m *bootstrap.Module, _ *flag.FlagSet, out io.Writer) error {
	routes, err := m.Module.StaticRoutes(ctx)
	if err != nil {
		return fmt.Errorf("routes: %w", err)
	}
	for _, route := range routes {
		if _, err := fmt.Fprintf(out, "%s %s %s %s\n", route.Lang, route.Kind, route.Path, route.File); err != nil {
			return err
		}
	}
	return nil
}

func runSitemap(ctx context.Context, m *bootstrap.Module, _ *flag.FlagSet, out io.Writer) error {
	sitemap, err := m.Module.Sitemap(ctx)
	if err != nil {
		return fmt.Errorf("sitemap: %w", err)
	}
	_, err = io.WriteString(out, sitemap)
	return err
}

func runRobots(_ context.Context, m *bootstrap.Module, _ *flag.FlagSet, out io.Writer) error {
	_, err := io.WriteString(out, m.Module.Robots())
	return err
}

func boolFlag(fs *flag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	getter, ok := f.Value.(flag.Getter)
	if !ok {
		return false
	}
	value, _ := getter.Get().(bool)
	return value
}
