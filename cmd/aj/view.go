package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/annotate-format/go-annotate/debug"
	"github.com/signadot/annotate-format/go-annotate/doc"
	"github.com/signadot/annotate-format/go-annotate/encode"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if err := viewReader(cfg, cc.Out, cc.In); err != nil {
			return err
		}
		return nil
	}
	if err := viewFiles(cfg, cc.Out, args); err != nil {
		return err
	}
	return nil
}

func viewFiles(cfg *ViewConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if err := viewFile(cfg, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			w.Write([]byte("---\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	docs := bytes.Split(in, []byte("\n---\n"))
	n := len(docs)
	mCfg := cfg.MainConfig
	opts := mCfg.encOpts(w)
	if debug.Opts() {
		debug.Logf("view: %d encode options for %d documents\n", len(opts), n)
	}
	for i, data := range docs {
		v, err := decodeValue(data, mCfg.Y)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if cfg.Patch != "" {
			v, err = applyMergePatch(v, cfg.Patch)
			if err != nil {
				return fmt.Errorf("error patching document %d: %w", i, err)
			}
		}
		if cfg.Expr != "" {
			v, err = applyExpr(v, cfg.Expr)
			if err != nil {
				return fmt.Errorf("error evaluating document %d: %w", i, err)
			}
		}
		node, err := doc.FromValue(v)
		if err != nil {
			return fmt.Errorf("error building document %d: %w", i, err)
		}
		if debug.Tree() {
			debug.LogAny(node)
		}
		if err := encode.Encode(node, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return fmt.Errorf("error writing document %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}

func decodeValue(data []byte, yamlIn bool) (any, error) {
	var v any
	if yamlIn {
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func applyMergePatch(v any, patchFile string) (any, error) {
	patch, err := os.ReadFile(patchFile)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %q: %w", patchFile, err)
	}
	before, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	after, err := jsonpatch.MergePatch(before, patch)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("merge patched %q: %s\n", patchFile, string(after))
	}
	return decodeValue(after, false)
}

func applyExpr(v any, code string) (any, error) {
	env := map[string]any{"it": v}
	if m, ok := v.(map[string]any); ok {
		for k, mv := range m {
			env[k] = mv
		}
	}
	res, err := expr.Eval(code, env)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", code, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q: %v\n", code, res)
	}
	return res, nil
}
