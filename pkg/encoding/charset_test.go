package encoding

import "testing"

func TestToUTF8(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		input   []byte
		want    string
	}{
		{"empty charset is utf-8", "", []byte("Régime"), "Régime"},
		{"utf-8 bom stripped", "UTF-8", append([]byte{0xEF, 0xBB, 0xBF}, "Art. 6"...), "Art. 6"},
		{"windows-1252", "windows-1252", []byte{'R', 0xE9, 'g', 'i', 'm', 'e', ' ', 0x80}, "Régime €"},
		{"latin-1 alias", "latin1", []byte{0xDC, 'b', 'e', 'r'}, "Über"},
		{"latin-2", "iso-8859-2", []byte{0xA3, 0xF3, 'd', 0xBF}, "Łódż"},
		{"euc-kr", "euc-kr", []byte{0xC7, 0xD1, 0xB1, 0xDB}, "한글"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUTF8(tt.input, tt.charset)
			if err != nil {
				t.Fatalf("ToUTF8() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ToUTF8() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToUTF8UnknownCharset(t *testing.T) {
	if _, err := ToUTF8([]byte("x"), "klingon"); err == nil {
		t.Error("expected error for unknown charset")
	}
}

func TestIsUTF8(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"", true},
		{"UTF-8", true},
		{" utf8 ", true},
		{"windows-1252", false},
	}
	for _, tt := range tests {
		if got := IsUTF8(tt.name); got != tt.want {
			t.Errorf("IsUTF8(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
