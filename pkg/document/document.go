// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package document loads, edits and persists the host applications' own
// JSON settings files.
//
// Edits are applied as JSON patch operations against the parsed hujson
// tree. Only an inserted or replaced member is laid out, following the
// indentation of its siblings; every other member is written back byte for
// byte, comments included (VS Code settings files allow comments). Reads
// go through gjson over a standardised copy of the tree.
//
// # Error Handling
//
// Loading never fails: a file that is absent, unreadable or not a JSON
// object is replaced by the caller-supplied default and the next Save
// rewrites it. Save is the one operation whose failure is returned, since
// swallowing it would report a mutation that did not happen.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"

	"github.com/mcpconfig/mcp-config/pkg/fileutils"
	"github.com/mcpconfig/mcp-config/pkg/logger"
)

// State describes what was found at a document path.
type State int

const (
	// StateMissing means no file exists at the path.
	StateMissing State = iota
	// StateValid means the file holds a JSON object.
	StateValid
	// StateCorrupt means the file exists but cannot be read or is not a JSON object.
	StateCorrupt
)

// Document is an editable JSON settings file.
type Document struct {
	value hujson.Value
}

// Entry is one member of a servers object, in document order.
type Entry struct {
	Name string
	// Raw is the member value as standard JSON.
	Raw []byte
}

// Result returns the entry value for gjson queries.
func (e Entry) Result() gjson.Result {
	return gjson.ParseBytes(e.Raw)
}

// Parse parses data, which must be a JSON (or JSON-with-comments) object.
func Parse(data []byte) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		data = []byte("{}")
	}
	v, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if _, ok := v.Value.(*hujson.Object); !ok {
		return nil, errors.New("document root is not a JSON object")
	}
	return &Document{value: v}, nil
}

// Empty returns a document holding an empty object.
func Empty() *Document {
	d, _ := Parse([]byte("{}"))
	return d
}

// Probe reports the state of the file at path. For StateCorrupt the
// returned error describes the problem.
func Probe(path string) (State, error) {
	// #nosec G304 -- path is a client config path resolved by mcp-config
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StateMissing, nil
		}
		return StateCorrupt, fmt.Errorf("failed to read file: %w", err)
	}
	if _, err := Parse(content); err != nil {
		return StateCorrupt, err
	}
	return StateValid, nil
}

// Load reads the document at path. If the file is absent, unreadable or
// not a JSON object, the document parsed from def is returned instead
// (an empty object if def itself does not parse).
func Load(path string, def []byte) *Document {
	fallback := func() *Document {
		d, err := Parse(def)
		if err != nil {
			return Empty()
		}
		return d
	}

	// #nosec G304 -- path is a client config path resolved by mcp-config
	content, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warnw("failed to read config file, using defaults", "path", path, "error", err)
		}
		return fallback()
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return fallback()
	}

	d, err := Parse(content)
	if err != nil {
		logger.Warnw("config file is not valid JSON, using defaults", "path", path, "error", err)
		return fallback()
	}
	return d
}

// Bytes returns the document, ending with a newline.
func (d *Document) Bytes() []byte {
	packed := d.value.Pack()
	if !bytes.HasSuffix(packed, []byte("\n")) {
		packed = append(packed, '\n')
	}
	return packed
}

// Save atomically writes the document to path, creating the parent
// directory if needed. An existing file keeps its permissions.
func (d *Document) Save(path string) error {
	perm := os.FileMode(0o600)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := fileutils.AtomicWriteFile(path, d.Bytes(), perm); err != nil {
		logger.Warnw("failed to write config file", "path", path, "error", err)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Section returns the value found at the JSON pointer prefix, for example
// "/mcpServers" or "/mcp/servers".
func (d *Document) Section(prefix string) gjson.Result {
	return gjson.GetBytes(d.standard(), retrievalPath(prefix))
}

// Entries returns the members of the object at prefix in document order.
// It returns nil when the prefix is missing or does not hold an object.
func (d *Document) Entries(prefix string) []Entry {
	section := d.Section(prefix)
	if !section.IsObject() {
		return nil
	}

	var entries []Entry
	section.ForEach(func(key, value gjson.Result) bool {
		entries = append(entries, Entry{Name: key.String(), Raw: []byte(value.Raw)})
		return true
	})
	return entries
}

// Entry returns the named member of the object at prefix.
func (d *Document) Entry(prefix, name string) (Entry, bool) {
	section := d.Section(prefix)
	if !section.IsObject() {
		return Entry{}, false
	}
	value := section.Get(gjson.Escape(name))
	if !value.Exists() {
		return Entry{}, false
	}
	return Entry{Name: name, Raw: []byte(value.Raw)}, true
}

// SetEntry inserts or replaces the named member of the object at prefix,
// creating the object if it does not exist. Other members are untouched;
// a replaced member keeps its position.
func (d *Document) SetEntry(prefix, name string, value any) error {
	if err := d.ensurePathExists(prefix); err != nil {
		return err
	}
	l, ok := d.layoutAt(prefix)
	if !ok {
		return fmt.Errorf("%s is not a JSON object", prefix)
	}
	return d.putMember(l, prefix, name, value)
}

// EnsureSection creates the object at prefix, and any missing parent
// objects, when it does not exist yet.
func (d *Document) EnsureSection(prefix string) error {
	return d.ensurePathExists(prefix)
}

// DeleteEntry removes the named member of the object at prefix. It
// reports whether the member existed.
func (d *Document) DeleteEntry(prefix, name string) (bool, error) {
	if _, ok := d.Entry(prefix, name); !ok {
		return false, nil
	}
	if err := d.patch(patchOp{Op: "remove", Path: joinPointer(prefix, name)}); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteEntryField removes one field from the named member of the object
// at prefix. It reports whether the field existed.
func (d *Document) DeleteEntryField(prefix, name, field string) (bool, error) {
	entry, ok := d.Entry(prefix, name)
	if !ok || !entry.Result().IsObject() || !entry.Result().Get(gjson.Escape(field)).Exists() {
		return false, nil
	}
	path := joinPointer(prefix, name) + "/" + escapePointerToken(field)
	if err := d.patch(patchOp{Op: "remove", Path: path}); err != nil {
		return false, err
	}
	return true, nil
}

// standard returns the document as standard JSON (comments and trailing
// commas removed) without modifying the editable tree.
func (d *Document) standard() []byte {
	v := d.value.Clone()
	v.Standardize()
	return v.Pack()
}

type patchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

func (d *Document) patch(ops ...patchOp) error {
	patch, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("failed to marshal patch: %w", err)
	}
	if err := d.value.Patch(patch); err != nil {
		return fmt.Errorf("failed to patch JSON: %w", err)
	}
	return nil
}

// ensurePathExists creates an empty object for every missing segment of
// the JSON pointer prefix. For "/mcp/servers" both "mcp" and "mcp.servers"
// are created if absent; existing segments are left as they are.
func (d *Document) ensurePathExists(prefix string) error {
	var parent, pathSoFar string
	for _, segment := range pointerSegments(prefix) {
		parent, pathSoFar = pathSoFar, pathSoFar+"/"+escapePointerToken(segment)
		if gjson.GetBytes(d.standard(), retrievalPath(pathSoFar)).Exists() {
			continue
		}
		l, ok := d.layoutAt(parent)
		if !ok {
			return fmt.Errorf("%s is not a JSON object", parent)
		}
		if err := d.putMember(l, parent, segment, json.RawMessage("{}")); err != nil {
			return err
		}
	}
	return nil
}

// layout describes how the members of one object are laid out.
type layout struct {
	obj *hujson.Object
	// indent precedes each member on its own line when multiline is set.
	indent    string
	multiline bool
	// base is the indentation of the line that closes the object.
	base string
	unit string
}

// layoutAt returns the layout of the object at the JSON pointer prefix.
func (d *Document) layoutAt(prefix string) (layout, bool) {
	root, ok := d.value.Value.(*hujson.Object)
	if !ok {
		return layout{}, false
	}
	l := newLayout(root, "", indentUnit(root))
	for _, segment := range pointerSegments(prefix) {
		m := findMember(l.obj, segment)
		if m == nil {
			return layout{}, false
		}
		child, ok := m.Value.Value.(*hujson.Object)
		if !ok {
			return layout{}, false
		}
		base := l.base
		if l.multiline {
			base = l.indent
		}
		l = newLayout(child, base, l.unit)
	}
	return l, true
}

func newLayout(obj *hujson.Object, base, unit string) layout {
	l := layout{obj: obj, base: base, unit: unit}
	if len(obj.Members) == 0 {
		l.indent, l.multiline = base+unit, true
		return l
	}
	if indent, ok := lineIndent(obj.Members[0].Name.BeforeExtra); ok {
		l.indent, l.multiline = indent, true
		return l
	}
	l.indent = base
	return l
}

// indentUnit returns the indentation of the root members, or two spaces
// when the root object gives no usable hint.
func indentUnit(root *hujson.Object) string {
	if len(root.Members) > 0 {
		if indent, ok := lineIndent(root.Members[0].Name.BeforeExtra); ok && indent != "" {
			return indent
		}
	}
	return "  "
}

// lineIndent returns the whitespace between the last newline of extra and
// the member that follows it.
func lineIndent(extra hujson.Extra) (string, bool) {
	i := bytes.LastIndexByte(extra, '\n')
	if i < 0 {
		return "", false
	}
	indent := string(extra[i+1:])
	if strings.Trim(indent, " \t") != "" {
		return "", false
	}
	return indent, true
}

func findMember(obj *hujson.Object, name string) *hujson.ObjectMember {
	for i := range obj.Members {
		if lit, ok := obj.Members[i].Name.Value.(hujson.Literal); ok && lit.String() == name {
			return &obj.Members[i]
		}
	}
	return nil
}

// putMember adds or replaces the named member of l.obj, found at the JSON
// pointer prefix. The value is marshalled in the object's layout; a new
// member is placed after the last one and keeps a trailing comma when the
// object had one.
func (d *Document) putMember(l layout, prefix, name string, value any) error {
	var raw []byte
	var err error
	if l.multiline {
		raw, err = json.MarshalIndent(value, l.indent, l.unit)
	} else {
		raw, err = json.Marshal(value)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	formatted, err := hujson.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	existed := findMember(l.obj, name) != nil
	wasEmpty := len(l.obj.Members) == 0
	trailingComma := !wasEmpty && l.obj.Members[len(l.obj.Members)-1].Value.AfterExtra != nil

	// The patch places the member and moves comments; its value is
	// compacted on the way, so the laid out value is set afterwards.
	if err := d.patch(patchOp{Op: "add", Path: joinPointer(prefix, name), Value: raw}); err != nil {
		return err
	}
	m := findMember(l.obj, name)
	if m == nil {
		return fmt.Errorf("failed to insert %s", name)
	}
	m.Value.Value = formatted.Value
	if existed {
		return nil
	}

	before := bytes.TrimRight(m.Name.BeforeExtra, " \t")
	switch {
	case bytes.HasSuffix(before, []byte("\n")) && l.multiline:
		before = append(before, l.indent...)
	case bytes.HasSuffix(before, []byte("\n")):
		before = append(before, l.base...)
	case l.multiline:
		before = append(before, "\n"+l.indent...)
	default:
		before = append(before, ' ')
	}
	m.Name.BeforeExtra = before
	m.Value.BeforeExtra = hujson.Extra(" ")
	if trailingComma && m == &l.obj.Members[len(l.obj.Members)-1] {
		m.Value.AfterExtra = hujson.Extra{}
	}
	if wasEmpty && !bytes.Contains(l.obj.AfterExtra, []byte("\n")) {
		l.obj.AfterExtra = append(hujson.Extra("\n"+l.base), bytes.TrimLeft(l.obj.AfterExtra, " \t")...)
	}
	return nil
}

// pointerSegments splits a JSON pointer into unescaped reference tokens.
func pointerSegments(pointer string) []string {
	trimmed := strings.TrimPrefix(pointer, "/")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		parts[i] = strings.ReplaceAll(p, "~0", "~")
	}
	return parts
}

// retrievalPath converts a JSON pointer into a gjson path.
// gjson treats characters such as '.', '*' and '?' as path syntax, while
// JSON pointers treat them as ordinary characters, so every segment is
// escaped for gjson.
func retrievalPath(pointer string) string {
	segments := pointerSegments(pointer)
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = gjson.Escape(s)
	}
	return strings.Join(escaped, ".")
}

func escapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

func joinPointer(prefix, name string) string {
	return strings.TrimSuffix(prefix, "/") + "/" + escapePointerToken(name)
}
