package sumo

import (
	"strings"
)

// Attr — один атрибут элемента; порядок атрибутов сохраняется как есть,
// чтобы повторная генерация давала байт-в-байт тот же документ
type Attr struct {
	Key   string
	Value string
}

// Element — узел XML-дерева. Если Comment непустой — это узел-комментарий.
type Element struct {
	Tag      string
	Comment  string
	Attrs    []Attr
	Children []*Element
}

// NewDocument создаёт корневой элемент со ссылкой на XSD-схему SUMO
func NewDocument(tag, schemaURL string) *Element {
	return &Element{
		Tag: tag,
		Attrs: []Attr{
			{Key: "xmlns:xsi", Value: "http://www.w3.org/2001/XMLSchema-instance"},
			{Key: "xsi:noNamespaceSchemaLocation", Value: schemaURL},
		},
	}
}

// Add добавляет дочерний элемент и возвращает его
func (e *Element) Add(tag string) *Element {
	child := &Element{Tag: tag}
	e.Children = append(e.Children, child)
	return child
}

// Set добавляет атрибут; возвращает элемент для цепочек вызовов
func (e *Element) Set(key, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
	return e
}

// AddComment вставляет узел-комментарий
func (e *Element) AddComment(text string) {
	e.Children = append(e.Children, &Element{Comment: text})
}

// Render печатает документ с XML-декларацией и отступами в два пробела
func (e *Element) Render() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	e.render(&b, 0)
	return b.String()
}

func (e *Element) render(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	if e.Comment != "" {
		b.WriteString(indent)
		b.WriteString("<!-- ")
		// "--" внутри комментария запрещён стандартом
		b.WriteString(strings.ReplaceAll(e.Comment, "--", "- -"))
		b.WriteString(" -->\n")
		return
	}
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString("=\"")
		b.WriteString(escapeAttr(a.Value))
		b.WriteString("\"")
	}
	if len(e.Children) == 0 {
		b.WriteString("/>\n")
		return
	}
	b.WriteString(">\n")
	for _, child := range e.Children {
		child.render(b, depth+1)
	}
	b.WriteString(indent)
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">\n")
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"\n", "&#10;",
	"\t", "&#9;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
