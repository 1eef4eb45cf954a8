package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
)

var exprTypes = []string{
	"Assign: name *token, value expr",
	"Binary: left expr, operator *token, right expr",
	"Grouping: expression expr",
	"Literal: value interface{}",
	"Logical: left expr, operator *token, right expr",
	"Unary: operator *token, right expr",
	"Variable: name *token",
}

var stmtTypes = []string{
	"Expr: expression expr",
	"Print: keyword *token, expression expr",
	"Var: name *token, initializer expr",
	"Block: stmts []stmt",
	"If: keyword *token, condition expr, thenBranch stmt, elseBranch stmt",
	"While: keyword *token, condition expr, body stmt",
}

func main() {
	baseName := flag.String("type", "", "Expr or Stmt")
	output := flag.String("out", "", "output file, stdout when empty")
	flag.Parse()

	var types []string
	switch *baseName {
	case "Stmt":
		types = stmtTypes
	case "Expr":
		types = exprTypes
	default:
		fmt.Fprintln(os.Stderr, "Usage: ast -type Expr|Stmt [-out file.go]")
		os.Exit(2)
	}

	src, err := format.Source([]byte(generateAst(*baseName, types)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *output == "" {
		fmt.Print(string(src))
		return
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + strings.ToLower(baseName) + " interface {\n"
	out += "\taccept(" + strings.ToLower(baseName) + "Visitor) R\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", strings.ToLower(baseName))
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + structType + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
