package highlight

import "testing"

func TestAttrSetClone(t *testing.T) {
	orig := AttrSet{KeyBold: true, KeyForeground: "#fff"}
	cp := orig.Clone()

	cp[KeyBold] = false
	if orig[KeyBold] != true {
		t.Error("Clone() should be independent of the original")
	}

	var nilSet AttrSet
	if c := nilSet.Clone(); c == nil || len(c) != 0 {
		t.Errorf("Clone() of nil = %v, want empty non-nil set", c)
	}
}

func TestAttrSetEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b AttrSet
		want bool
	}{
		{"both empty", AttrSet{}, AttrSet{}, true},
		{"nil vs empty", nil, AttrSet{}, true},
		{"same", AttrSet{KeyBold: true}, AttrSet{KeyBold: true}, true},
		{"different value", AttrSet{KeyBold: true}, AttrSet{KeyBold: false}, false},
		{"different key", AttrSet{KeyBold: true}, AttrSet{KeyItalic: true}, false},
		{"subset", AttrSet{KeyBold: true}, AttrSet{KeyBold: true, KeyItalic: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRuleSetAppend(t *testing.T) {
	a := RuleSet{NewRule(MustPattern(`a`, 0), Attr(KeyBold, true))}
	b := RuleSet{NewRule(MustPattern(`b`, 0), Attr(KeyItalic, true))}
	c := RuleSet{NewRule(MustPattern(`c`, 0), Attr(KeyUnderline, true))}

	combined := a.Append(b, c)
	if len(combined) != 3 {
		t.Fatalf("Append() length = %d, want 3", len(combined))
	}
	// Order is the conflict-resolution order and must be preserved.
	for i, want := range []string{"a", "b", "c"} {
		if got := combined[i].Pattern.String(); got != want {
			t.Errorf("rule %d pattern = %q, want %q", i, got, want)
		}
	}
	if len(a) != 1 {
		t.Error("Append() modified the receiver")
	}
}

func TestStyledTextAttrsAt(t *testing.T) {
	st := Highlight("abcdef", RuleSet{
		NewRule(MustPattern(`cd`, 0), Attr(KeyBold, true)),
	})

	if at := st.AttrsAt(-1); at != nil {
		t.Errorf("AttrsAt(-1) = %v, want nil", at)
	}
	if at := st.AttrsAt(6); at != nil {
		t.Errorf("AttrsAt(len) = %v, want nil", at)
	}
	if at := st.AttrsAt(2); at[KeyBold] != true {
		t.Errorf("AttrsAt(2) = %v, want bold", at)
	}
}
