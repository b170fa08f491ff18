package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dxerror "github.com/msto63/decorx/foundation/core/error"
	"github.com/msto63/decorx/foundation/core/object"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{" toml ", FormatTOML, false},
		{"xml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dxerror.HasCode(err, dxerror.CodeUnsupportedFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("a/b.JSON"))
	assert.Equal(t, FormatYAML, DetectFormat("c.yml"))
	assert.Equal(t, FormatYAML, DetectFormat("c.yaml"))
	assert.Equal(t, FormatTOML, DetectFormat("decorx.toml"))
	assert.Equal(t, FormatAuto, DetectFormat("README"))
}

func TestSniff(t *testing.T) {
	assert.Equal(t, FormatJSON, Sniff([]byte("  {\"a\":1}")))
	assert.Equal(t, FormatTOML, Sniff([]byte("[server]\nport = 1")))
	assert.Equal(t, FormatTOML, Sniff([]byte("title = \"x\"\n")))
	assert.Equal(t, FormatYAML, Sniff([]byte("title: x\n")))
	assert.Equal(t, FormatYAML, Sniff(nil))
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, ".toml", FormatTOML.Extension())
	assert.Equal(t, "unknown", Format(42).String())
	assert.Equal(t, "", FormatAuto.Extension())
}

func TestDecode_KeepsOrder(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		content string
	}{
		{"json", FormatJSON, `{"zeta":1,"alpha":"x","mid":{"b":true,"a":2}}`},
		{"yaml", FormatYAML, "zeta: 1\nalpha: x\nmid:\n  b: true\n  a: 2\n"},
		{"toml", FormatTOML, "zeta = 1\nalpha = \"x\"\n\n[mid]\nb = true\na = 2\n"},
		{"sniffed json", FormatAuto, `{"zeta":1,"alpha":"x","mid":{"b":true,"a":2}}`},
		{"sniffed toml", FormatAuto, "zeta = 1\nalpha = \"x\"\n\n[mid]\nb = true\na = 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Decode([]byte(tt.content), tt.format)
			require.NoError(t, err)

			assert.Equal(t, []string{"zeta", "alpha", "mid"}, o.Keys())
			assert.True(t, object.StrictEqual(1, o.Value("zeta")))
			assert.Equal(t, "x", o.Value("alpha"))

			mid, ok := o.Value("mid").(*object.Object)
			require.True(t, ok)
			assert.Equal(t, []string{"b", "a"}, mid.Keys())
		})
	}
}

func TestDecode_TOMLArrayTables(t *testing.T) {
	content := `
name = "catalog"

[[products]]
sku = "A-1"
price = 10

[[products]]
sku = "B-2"
price = 12.5
`
	o, err := Decode([]byte(content), FormatTOML)
	require.NoError(t, err)

	products, ok := o.Value("products").([]any)
	require.True(t, ok)
	require.Len(t, products, 2)

	second := products[1].(*object.Object)
	assert.Equal(t, []string{"sku", "price"}, second.Keys())
	assert.Equal(t, 12.5, second.Value("price"))
}

func TestDecode_Blank(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML, FormatAuto} {
		o, err := Decode([]byte("  \n"), f)
		require.NoError(t, err, f.String())
		assert.Equal(t, 0, o.Len())
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		content string
	}{
		{"json", FormatJSON, `{"a":`},
		{"json array", FormatJSON, `[1,2]`},
		{"yaml sequence", FormatYAML, "- a\n- b\n"},
		{"toml", FormatTOML, "a = = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.content), tt.format)
			require.Error(t, err)
			assert.True(t, dxerror.HasCode(err, dxerror.CodeInvalidFormat))
		})
	}
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode([]byte("a"), Format(9))
	assert.True(t, dxerror.HasCode(err, dxerror.CodeUnsupportedFormat))
}

func TestEncode_JSON(t *testing.T) {
	o := object.New()
	o.Set("b", 1)
	o.Set("a", []any{"x", nil})

	compact, err := Encode(o, FormatJSON, 0)
	require.NoError(t, err)
	assert.Equal(t, "{\"b\":1,\"a\":[\"x\",null]}\n", string(compact))

	indented, err := Encode(o, FormatJSON, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    \"x\",\n    null\n  ]\n}\n", string(indented))
}

func TestEncode_YAML(t *testing.T) {
	inner := object.New()
	inner.Set("y", 2)
	o := object.New()
	o.Set("z", "last")
	o.Set("inner", inner)

	out, err := Encode(o, FormatYAML, 2)
	require.NoError(t, err)
	assert.Equal(t, "z: last\ninner:\n  y: 2\n", string(out))
}

func TestEncode_TOMLDropsNulls(t *testing.T) {
	o := object.New()
	o.Set("name", "x")
	o.Set("gone", nil)
	o.Set("fn", func() {})

	out, err := Encode(o, FormatTOML, 0)
	require.NoError(t, err)
	assert.Equal(t, "name = \"x\"\n", string(out))
}

func TestRoundTrip(t *testing.T) {
	source := `{"title":"Dev","id":"jsmith","age":32,"tags":["a","b"],"address":{"city":"Berlin","zip":"10115"}}`
	o, err := Decode([]byte(source), FormatJSON)
	require.NoError(t, err)

	for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(o, f, 2)
			require.NoError(t, err)

			back, err := Decode(data, f)
			require.NoError(t, err)
			assert.Equal(t, o.ToMap()["address"], back.ToMap()["address"])
			assert.True(t, object.StrictEqual(32, back.Value("age")))
			assert.ElementsMatch(t, o.Keys(), back.Keys())
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "user.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: jsmith\nage: 32\n"), 0o644))

	o, err := ReadFile(path, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "age"}, o.Keys())

	noExt := filepath.Join(dir, "user")
	require.NoError(t, os.WriteFile(noExt, []byte(`{"id":"x"}`), 0o644))
	o, err = ReadFile(noExt, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, "x", o.Value("id"))
}

func TestReadFile_Errors(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"), FormatAuto)
	require.Error(t, err)
	assert.True(t, dxerror.HasCode(err, dxerror.CodeNotFound))

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = ReadFile(path, FormatAuto)
	require.Error(t, err)
	assert.True(t, dxerror.HasCode(err, dxerror.CodeInvalidFormat))
	assert.Contains(t, err.Error(), "bad.json")
}

func TestRead(t *testing.T) {
	o, err := Read(strings.NewReader("a: 1\n"), FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, 1, o.Value("a"))
}
