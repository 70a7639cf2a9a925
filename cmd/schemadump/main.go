// Command schemadump reads a captured patch file off disk and prints the
// field tree it decodes into, for offline debugging of patches captured
// from a live connection. It plays the same role printer.go's
// PrinterDocument/PrinterSchema types play for glint's own documents,
// rebuilt around this repository's wire format and gameschema types.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jedib0t/go-pretty/v6/list"
	"go.uber.org/zap"

	"github.com/kungfusheep/schemasync/gameschema"
	"github.com/kungfusheep/schemasync/reconcile"
	"github.com/kungfusheep/schemasync/schema"
)

// CLI is the full command's flag/argument surface, parsed by kong.
type CLI struct {
	Patch string `arg:"" help:"Path to a captured patch file." type:"existingfile"`
	Root  string `default:"state" help:"Root schema type to decode against (state, primitivetypes, childschematypes, arrayschematypes, mapschematypes)."`
	Debug bool   `help:"Enable debug logging of the decode pass."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("schemadump"),
		kong.Description("Decode a captured patch and print its field tree."))

	log := zap.NewNop()
	if cli.Debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "schemadump: logger init:", err)
			os.Exit(1)
		}
		log = l
	}

	root, ok := rootByName(cli.Root)
	if !ok {
		fmt.Fprintf(os.Stderr, "schemadump: unknown root schema %q\n", cli.Root)
		os.Exit(1)
	}

	patch, err := os.ReadFile(cli.Patch)
	if err != nil {
		fmt.Fprintln(os.Stderr, "schemadump:", err)
		os.Exit(1)
	}

	d := reconcile.New().WithLogger(log)
	if err := d.Decode(patch, root); err != nil {
		fmt.Fprintln(os.Stderr, "schemadump: decode failed:", err)
		os.Exit(1)
	}

	l := list.NewWriter()
	printSchema(l, root)
	fmt.Println(l.Render())
}

func rootByName(name string) (schema.Schema, bool) {
	switch name {
	case "state":
		return gameschema.NewState(), true
	case "primitivetypes":
		return gameschema.NewPrimitiveTypes(), true
	case "childschematypes":
		return gameschema.NewChildSchemaTypes(), true
	case "arrayschematypes":
		return gameschema.NewArraySchemaTypes(), true
	case "mapschematypes":
		return gameschema.NewMapSchemaTypes(), true
	default:
		return nil, false
	}
}

// printSchema walks s's field table and prints one list item per field,
// recursing into ref/array/map fields so nested schemas render as nested
// list indentation.
func printSchema(l list.Writer, s schema.Schema) {
	table := s.FieldTable()
	for i := 0; i < table.Len(); i++ {
		field, ok := table.Field(uint8(i))
		if !ok {
			continue
		}
		switch field.Kind {
		case schema.KindRef:
			child := s.GetRef(field.Name)
			if child == nil {
				l.AppendItem(fmt.Sprintf("%s: <nil>", field.Name))
				continue
			}
			l.AppendItem(fmt.Sprintf("%s:", field.Name))
			l.Indent()
			printSchema(l, child)
			l.UnIndent()
		case schema.KindArray:
			arr := s.GetArray(field.Name)
			l.AppendItem(fmt.Sprintf("%s: [%d]", field.Name, arr.Len()))
			l.Indent()
			for idx, el := range arr.Elements() {
				printElement(l, idx, el)
			}
			l.UnIndent()
		case schema.KindMap:
			m := s.GetMap(field.Name)
			l.AppendItem(fmt.Sprintf("%s: {%d}", field.Name, m.Len()))
			l.Indent()
			for _, key := range m.Keys() {
				v, _ := m.Get(key)
				printElement(l, key, v)
			}
			l.UnIndent()
		default:
			l.AppendItem(fmt.Sprintf("%s (%s): %v", field.Name, field.Kind, primitiveValue(s, field)))
		}
	}
}

func printElement(l list.Writer, key any, el any) {
	if child, ok := el.(schema.Schema); ok && child != nil {
		l.AppendItem(fmt.Sprintf("%v:", key))
		l.Indent()
		printSchema(l, child)
		l.UnIndent()
		return
	}
	l.AppendItem(fmt.Sprintf("%v: %v", key, el))
}

// primitiveValue reads a primitive field's value back through the
// matching typed accessor, the same (wire-kind, value) dispatch
// DecodePrimitiveField uses to write it.
func primitiveValue(s schema.Schema, field schema.FieldMeta) any {
	switch field.Kind {
	case schema.KindString:
		return s.GetString(field.Name)
	case schema.KindBool:
		return s.GetBool(field.Name)
	case schema.KindInt8:
		return s.GetInt8(field.Name)
	case schema.KindUint8:
		return s.GetUint8(field.Name)
	case schema.KindInt16:
		return s.GetInt16(field.Name)
	case schema.KindUint16:
		return s.GetUint16(field.Name)
	case schema.KindInt32:
		return s.GetInt32(field.Name)
	case schema.KindUint32:
		return s.GetUint32(field.Name)
	case schema.KindInt64:
		return s.GetInt64(field.Name)
	case schema.KindUint64:
		return s.GetUint64(field.Name)
	case schema.KindFloat32:
		return s.GetFloat32(field.Name)
	case schema.KindFloat64:
		return s.GetFloat64(field.Name)
	case schema.KindNumber:
		return s.GetNumber(field.Name)
	default:
		return nil
	}
}
