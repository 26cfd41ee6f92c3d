// notes-cli renders a workflow payload from disk without running the server,
// and can mint bearer tokens for locked-down deployments.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"englishkaku/internal/auth"
	"englishkaku/internal/config"
	"englishkaku/internal/notes"
	"englishkaku/internal/pdf"
	"englishkaku/internal/render"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "path to YAML config (optional)")
		in       = flag.String("in", "", "input JSON payload file")
		out      = flag.String("out", "", "output file (default: stdout for html, notes.pdf for pdf)")
		format   = flag.String("format", "pdf", "output format: pdf or html")
		issue    = flag.Bool("issue-token", false, "print a signed bearer token and exit")
		workflow = flag.String("workflow", "cli", "workflow name embedded in issued tokens")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if *issue {
		issueToken(cfg, *workflow)
		return
	}

	if *in == "" {
		log.Fatal("missing -in payload file")
	}

	b, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read payload: %v", err)
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		log.Fatalf("parse payload: %v", err)
	}

	resolver := notes.Resolver{DefaultTitle: cfg.Sheet.DefaultTitle}
	stamp := notes.NewStamp(cfg.Sheet.TZOffsetHours, cfg.Sheet.TZLabel)
	renderer, err := render.New(render.Options{
		Banner:         cfg.Sheet.Banner,
		Footer:         cfg.Sheet.Footer,
		SentenceTable:  cfg.Sheet.SentenceTableEnabled(),
		TrustedMessage: cfg.Sheet.TrustedMessage,
	})
	if err != nil {
		log.Fatalf("build renderer: %v", err)
	}

	rec := resolver.Resolve(raw)
	doc, err := renderer.Render(rec, stamp.Display(rec.RawTime))
	if err != nil {
		log.Fatalf("render sheet: %v", err)
	}

	switch *format {
	case "html":
		writeOut(*out, []byte(doc), os.Stdout)
	case "pdf":
		engine := pdf.NewChrome(cfg.Browser.Bin)
		defer engine.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		data, err := engine.Render(ctx, doc)
		if err != nil {
			log.Fatalf("generate pdf: %v", err)
		}
		dest := *out
		if dest == "" {
			dest = "notes.pdf"
		}
		writeOut(dest, data, nil)
	default:
		log.Fatalf("unknown format %q (want pdf or html)", *format)
	}
}

func issueToken(cfg config.Config, workflow string) {
	tokens := auth.TokenService{
		Secret:   []byte(cfg.Auth.Secret),
		Issuer:   cfg.Auth.Issuer,
		Duration: cfg.Auth.TTL(),
	}
	if !tokens.Enabled() {
		log.Fatal("no auth secret configured; set auth.secret or ENGLISHKAKU_JWT_SECRET")
	}
	tok, exp, err := tokens.Sign(workflow)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Printf("%s\n# expires %s\n", tok, exp.Format(time.RFC3339))
}

func writeOut(path string, data []byte, fallback *os.File) {
	if path == "" && fallback != nil {
		_, _ = fallback.Write(data)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("wrote %s (%d bytes)", path, len(data))
}
