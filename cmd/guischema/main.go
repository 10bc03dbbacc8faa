package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	js "github.com/reoring/goskema/jsonschema"

	gui "github.com/reoring/goskema-gui"
)

// guischema renders the JSON Schema for a model whose fields hold GUI value
// types. The manifest is YAML:
//
//	fields:
//	  size: size
//	  background: color
//	  released: date
//	required: [size]
func main() {
	fs := flag.NewFlagSet("guischema", flag.ExitOnError)
	var manifestPath string
	var out string
	fs.StringVar(&manifestPath, "manifest", "", "YAML manifest mapping field names to kinds")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	_ = fs.Parse(os.Args[1:])
	if manifestPath == "" {
		usage(fs)
		os.Exit(2)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		fatalf("read manifest: %v", err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		fatalf("parse manifest: %v", err)
	}
	if len(m.Fields) == 0 {
		fatalf("manifest declares no fields")
	}

	schema := &js.Schema{
		Type:                 "object",
		Properties:           map[string]*js.Schema{},
		Required:             m.Required,
		AdditionalProperties: false,
	}
	for name, kind := range m.Fields {
		frag, err := kindSchema(kind)
		if err != nil {
			fatalf("field %q: %v", name, err)
		}
		schema.Properties[name] = frag
	}

	buf, err := j.MarshalIndent(schema, "", "  ")
	if err != nil {
		fatalf("marshal schema: %v", err)
	}
	buf = append(buf, '\n')

	if out == "" {
		_, _ = os.Stdout.Write(buf)
		return
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(out, buf, 0o644); err != nil {
		fatalf("write %s: %v", out, err)
	}
}

type manifest struct {
	Fields   map[string]string `yaml:"fields"`
	Required []string          `yaml:"required"`
}

func kindSchema(kind string) (*js.Schema, error) {
	switch kind {
	case "size":
		return gui.SizeSchema().JSONSchema()
	case "point":
		return gui.PointSchema().JSONSchema()
	case "rect":
		return gui.RectSchema().JSONSchema()
	case "rgb":
		return gui.RGBSchema().JSONSchema()
	case "rgba":
		return gui.RGBASchema().JSONSchema()
	case "color":
		return gui.ColorSchema().JSONSchema()
	case "hex-color":
		return gui.HexColorSchema().JSONSchema()
	case "date":
		return gui.DateSchema().JSONSchema()
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "guischema renders JSON Schema for GUI value fields\n\nUsage:\n  guischema -manifest fields.yaml [-o schema.json]")
	fs.PrintDefaults()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "guischema: "+format+"\n", args...)
	os.Exit(1)
}
