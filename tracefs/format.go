package tracefs

import (
	"strconv"
	"strings"

	"github.com/arloliu/eventheader/errs"
	"github.com/arloliu/eventheader/fieldtype"
)

// FieldInfo is one parsed "field:" line from a tracefs format file.
type FieldInfo struct {
	Name     string
	TypeExpr string // the raw C type expression, e.g. "char" or "__data_loc char[]"
	Offset   int
	Size     int
	Signed   *bool // nil when the format file omits signed: (rare but legal)

	Encoding    fieldtype.FieldEncoding
	Format      fieldtype.FieldFormat
	IsArray     bool
	ArrayCount  int // [N] count, or size/ElementSize for "[]"; 0 for non-arrays, __data_loc/__rel_loc, or "[]" with size 0
	ElementSize int
	DynamicLoc  bool

	raw string // verbatim source line, reproduced by WriteTo
}

// Format is one parsed tracefs format file: the name:/ID: header plus the
// field: lines under format:.
type Format struct {
	SystemName string
	Name       string
	ID         int

	Fields []FieldInfo

	lines []string // every raw source line in order, for byte-identical WriteTo
}

// ParseFormat parses the text of one tracefs format file. systemName is the
// <sys> path component (format files don't self-report it); it is exposed
// on the result but does not affect parsing.
func ParseFormat(systemName, text string) (Format, error) {
	lines := splitLinesKeepTrailer(text)

	f := Format{SystemName: systemName, lines: lines}

	sawName := false

	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r\n")

		switch {
		case strings.HasPrefix(trimmed, "name:"):
			f.Name = strings.TrimSpace(strings.TrimPrefix(trimmed, "name:"))
			sawName = true
		case strings.HasPrefix(trimmed, "ID:"):
			idStr := strings.TrimSpace(strings.TrimPrefix(trimmed, "ID:"))
			id, err := strconv.Atoi(idStr)
			if err != nil {
				return Format{}, errs.ErrInvalidData
			}
			f.ID = id
		case strings.HasPrefix(strings.TrimSpace(trimmed), "field:"):
			field, err := parseFieldLine(trimmed)
			if err != nil {
				return Format{}, err
			}
			f.Fields = append(f.Fields, field)
		}
	}

	if !sawName {
		return Format{}, errs.ErrInvalidData
	}

	return f, nil
}

// parseFieldLine parses one "field:<type-expr> <name>; offset:<n>; size:<n>;
// signed:<0|1>;" line (arbitrary leading whitespace, semicolon-separated
// clauses, each optionally followed by tabs/spaces).
func parseFieldLine(line string) (FieldInfo, error) {
	trimmed := strings.TrimSpace(line)

	parts := strings.Split(trimmed, ";")

	info := FieldInfo{raw: line}

	for _, part := range parts {
		clause := strings.TrimSpace(part)
		if clause == "" {
			continue
		}

		switch {
		case strings.HasPrefix(clause, "field:"):
			decl := strings.TrimSpace(strings.TrimPrefix(clause, "field:"))

			typeExpr, arraySuffix, name, err := splitDeclaration(decl)
			if err != nil {
				return FieldInfo{}, err
			}

			info.TypeExpr = typeExpr + arraySuffix
			info.Name = name
		case strings.HasPrefix(clause, "offset:"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(clause, "offset:")))
			if err != nil {
				return FieldInfo{}, errs.ErrInvalidData
			}
			info.Offset = n
		case strings.HasPrefix(clause, "size:"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(clause, "size:")))
			if err != nil {
				return FieldInfo{}, errs.ErrInvalidData
			}
			info.Size = n
		case strings.HasPrefix(clause, "signed:"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(clause, "signed:")))
			if err != nil {
				return FieldInfo{}, errs.ErrInvalidData
			}
			signed := n != 0
			info.Signed = &signed
		}
	}

	if info.Name == "" {
		return FieldInfo{}, errs.ErrInvalidData
	}

	deduced := deduceType(info.TypeExpr, info.Size)
	info.Encoding = deduced.encoding
	info.Format = deduced.format
	info.IsArray = deduced.isArray
	info.ArrayCount = deduced.arrayCount
	info.ElementSize = deduced.elementSize
	info.DynamicLoc = deduced.dynamicLoc

	if info.Signed != nil && *info.Signed && info.Format == fieldtype.UnsignedInt {
		info.Format = fieldtype.SignedInt
	}

	return info, nil
}

// splitDeclaration splits "TYPE NAME" or "TYPE NAME[N]" / "TYPE NAME[]" into
// the type expression, the array suffix ("" if not an array, else "[N]" or
// "[]"), and the bare field name. Brackets inside TYPE (as in
// "__data_loc char[] NAME") stay part of the type expression.
func splitDeclaration(decl string) (typeExpr, arraySuffix, name string, err error) {
	decl = strings.TrimSpace(decl)

	bracket := strings.LastIndexByte(decl, '[')
	if bracket > strings.LastIndexByte(decl, ']') {
		return "", "", "", errs.ErrInvalidData
	}

	if bracket >= 0 && strings.HasSuffix(decl, "]") {
		arraySuffix = decl[bracket:]
		decl = strings.TrimSpace(decl[:bracket])
	}

	lastSpace := strings.LastIndexByte(decl, ' ')
	lastStar := strings.LastIndexByte(decl, '*')
	splitAt := lastSpace

	if lastStar > splitAt {
		splitAt = lastStar
	}

	if splitAt < 0 {
		return "", "", "", errs.ErrInvalidData
	}

	typeExpr = strings.TrimSpace(decl[:splitAt+1])
	name = strings.TrimSpace(decl[splitAt+1:])

	if name == "" {
		return "", "", "", errs.ErrInvalidData
	}

	return typeExpr, arraySuffix, name, nil
}

// splitLinesKeepTrailer splits text into lines, preserving each line's own
// terminator (if any) by keeping it folded into the previous element is not
// attempted here: WriteTo rejoins with "\n" plus a final newline if the
// input had one, which is sufficient for tracefs format files (Unix text,
// LF-terminated).
func splitLinesKeepTrailer(text string) []string {
	trailingNewline := strings.HasSuffix(text, "\n")
	trimmed := strings.TrimSuffix(text, "\n")
	lines := strings.Split(trimmed, "\n")

	if trailingNewline {
		lines = append(lines, "")
	}

	return lines
}

// WriteTo reproduces the parsed format file's text byte-for-byte.
func (f Format) WriteTo() string {
	return strings.Join(f.lines, "\n")
}
