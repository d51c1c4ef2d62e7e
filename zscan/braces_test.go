package zscan

import "testing"

func TestBraces(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		value int64
	}{
		// opmask register inside braces is used as a mask
		{"{k1}", OpmaskMask, 0},
		{"{ k3 }", OpmaskMask, 0},
		{"{z}", Deco, DecoZ},
		{"{1to4}", Deco, Deco1to4},
		{"{1to16}", Deco, Deco1to16},
		{"{sae}", Deco, DecoSAE},
		{"{rn-sae}", Deco, DecoRNSAE},
		{"{rz-sae}", Deco, DecoRZSAE},
		{"{evex}", Deco, DecoEVEX},
		{"{RN-SAE}", Deco, DecoRNSAE},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			diag := new(recordDiag)
			s := New(diag)
			s.Reset([]byte(test.input))
			tok := s.Next()
			if tok.Kind != test.kind {
				t.Fatalf("expected %v, got %v", test.kind, tok.Kind)
			}
			if tok.Kind == Deco && tok.Int != test.value {
				t.Fatalf("expected value %d, got %d", test.value, tok.Int)
			}
			if len(diag.errs) > 0 {
				t.Fatalf("unexpected diagnostics %v", diag.errs)
			}
			if tok.Span.Len != len(test.input) {
				t.Fatalf("expected span %d, got %d", len(test.input), tok.Span.Len)
			}
		})
	}
}

func TestBracesInvalid(t *testing.T) {
	// unknown content
	diag := new(recordDiag)
	s := New(diag)
	s.Reset([]byte("{bogus}"))
	if tok := s.Next(); tok.Kind != Invalid {
		t.Fatalf("got %v", tok)
	}
	if len(diag.errs) != 1 {
		t.Fatalf("got %v", diag.errs)
	}

	// a keyword with no brace validity at all
	diag = new(recordDiag)
	s = New(diag)
	s.Reset([]byte("{eax}"))
	if tok := s.Next(); tok.Kind != Invalid {
		t.Fatalf("got %v", tok)
	}
	if len(diag.errs) != 1 {
		t.Fatalf("got %v", diag.errs)
	}

	// over-length content never reaches lookup
	diag = new(recordDiag)
	s = New(diag)
	s.Reset([]byte("{notarealdecorator}"))
	if tok := s.Next(); tok.Kind != Invalid {
		t.Fatalf("got %v", tok)
	}
	if len(diag.errs) != 1 {
		t.Fatalf("got %v", diag.errs)
	}
}

func TestBracesUnterminated(t *testing.T) {
	diag := new(recordDiag)
	s := New(diag)
	input := []byte("{k1")
	s.Reset(input)
	tok := s.Next()
	if tok.Kind != Invalid {
		t.Fatalf("got %v", tok)
	}
	if len(diag.errs) != 1 {
		t.Fatalf("got %v", diag.errs)
	}
	if s.Tell() != len(input) {
		t.Fatalf("cursor at %d", s.Tell())
	}
	if tok := s.Next(); tok.Kind != EOS {
		t.Fatalf("got %v", tok)
	}
}

func TestBareOpmaskIsRegister(t *testing.T) {
	// outside braces k1 is just a register
	s := New(nil)
	s.Reset([]byte("k1"))
	tok := s.Next()
	if tok.Kind != Reg {
		t.Fatalf("got %v", tok)
	}
	if !IsRegClass(RegClassOpmask, tok.Int) {
		t.Fatal("k1 must be an opmask register")
	}
	if IsRegClass(RegClassGPR, tok.Int) {
		t.Fatal("k1 is not a GPR")
	}
}
