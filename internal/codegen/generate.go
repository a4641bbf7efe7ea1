package codegen

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
)

const sormPkg = "github.com/forgo/sorm/pkg/sorm"

// Header is the first line of every generated file.
const Header = "Code generated by sorm gen. DO NOT EDIT."

// Generate writes the Entity implementation for every model in file to w.
func Generate(w io.Writer, file *File) error {
	f := jen.NewFile(file.Package)
	f.HeaderComment(Header)
	f.ImportName(sormPkg, "sorm")

	for _, m := range file.Models {
		genModel(f, m)
	}

	if err := f.Render(w); err != nil {
		return fmt.Errorf("render %s: %w", file.Package, err)
	}
	return nil
}

func genModel(f *jen.File, m Model) {
	recv := receiverName(m.Name)

	f.Comment(fmt.Sprintf("TableName returns the table %s records are stored in.", m.Name))
	f.Func().Params(jen.Id(m.Name)).Id("TableName").Params().String().Block(
		jen.Return(jen.Lit(m.Table)),
	)

	f.Comment(fmt.Sprintf("Identity returns a copy of the %s record id, or nil if it was never saved.", m.Name))
	f.Func().Params(jen.Id(recv).Id(m.Name)).Id("Identity").Params().Op("*").Qual(sormPkg, "RecordID").Block(
		jen.If(jen.Id(recv).Dot(m.IDField).Op("==").Nil()).Block(
			jen.Return(jen.Nil()),
		),
		jen.Id("id").Op(":=").Op("*").Id(recv).Dot(m.IDField),
		jen.Return(jen.Op("&").Id("id")),
	)
}

func receiverName(typeName string) string {
	r := []rune(typeName)
	return string(unicode.ToLower(r[0]))
}

// OutputPath returns the generated file path for input: person.go becomes
// person_sorm.go.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, ".go") + "_sorm.go"
}
