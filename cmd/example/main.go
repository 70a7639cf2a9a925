// Command example builds the literal patches from spec.md's §8 end-to-end
// scenarios 1 and 2 with patchbuild, applies them with reconcile, and prints the
// resulting field values — the role the original's usage_*.cpp files and
// glint's own example_test.go play for their respective decoders.
package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kungfusheep/schemasync/gameschema"
	"github.com/kungfusheep/schemasync/patchbuild"
	"github.com/kungfusheep/schemasync/reconcile"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	d := reconcile.New().WithLogger(log)

	primitiveTypesScenario(d)
	arrayScenario(d)
}

// primitiveTypesScenario is spec.md §8 scenario 1.
func primitiveTypesScenario(d *reconcile.Decoder) {
	buf := patchbuild.New()
	buf.Field(0).Int8(-128)
	buf.Field(1).Uint8(255)
	buf.Field(2).Int16(-32768)
	buf.Field(3).Uint16(65535)
	buf.Field(4).Int32(-2147483648)
	buf.Field(5).Uint32(4294967295)
	buf.Field(20).String("Hello world")
	buf.Field(21).Bool(true)

	p := gameschema.NewPrimitiveTypes()
	if err := d.Decode(buf.Build(), p); err != nil {
		fmt.Println("primitive types scenario failed:", err)
		return
	}

	fmt.Printf("int8=%d uint8=%d int16=%d uint16=%d int32=%d uint32=%d str=%q boolean=%v\n",
		p.GetInt8(""), p.GetUint8(""), p.GetInt16(""), p.GetUint16(""),
		p.GetInt32(""), p.GetUint32(""), p.GetString(""), p.GetBool(""))
}

// arrayScenario is spec.md §8 scenario 2.
func arrayScenario(d *reconcile.Decoder) {
	buf := patchbuild.New()
	buf.Array(0, 3, []patchbuild.ArrayChange{
		{Index: 0, FromIdx: -1, Encode: func(b *patchbuild.Buffer) { b.String("one") }},
		{Index: 1, FromIdx: -1, Encode: func(b *patchbuild.Buffer) { b.String("two") }},
		{Index: 2, FromIdx: -1, Encode: func(b *patchbuild.Buffer) { b.String("three") }},
	})
	buf.Array(2, 1, []patchbuild.ArrayChange{
		{Index: 0, FromIdx: -1, Encode: func(b *patchbuild.Buffer) {
			b.Field(0).Number(100)
			b.Field(1).Number(100)
			b.Field(2).String("Player One")
			b.EndOfStructure()
		}},
	})

	st := gameschema.NewState()
	if err := d.Decode(buf.Build(), st); err != nil {
		fmt.Println("array scenario failed:", err)
		return
	}

	strings := st.GetArray("arrayOfStrings")
	fmt.Printf("arrayOfStrings has %d elements: %v\n", strings.Len(), strings.Elements())

	players := st.GetArray("arrayOfPlayers")
	player := mustPlayer(players.At(0))
	fmt.Printf("arrayOfPlayers[0] = %q at (%v, %v)\n", player.GetString("name"), player.GetNumber("x"), player.GetNumber("y"))
}

func mustPlayer(el any, ok bool) *gameschema.Player {
	if !ok {
		panic("expected element")
	}
	return el.(*gameschema.Player)
}
