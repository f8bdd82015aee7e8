// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dlah

import "testing"

func TestFingerprintSerializeDeserializeRoundTrip(t *testing.T) {
	fp, err := Generate([]byte("The quick brown fox jumps over the lazy dog"), DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	encoded := fp.Serialize()
	decoded, err := Deserialize(encoded)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if string(decoded.structData) != string(fp.structData) {
		t.Error("round-tripped structural data does not match original")
	}
	if decoded.bloom.words != fp.bloom.words {
		t.Error("round-tripped bloom bitmap does not match original")
	}
}

func TestFingerprintSerializeLayout(t *testing.T) {
	fp, err := Generate([]byte("hello world"), DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	encoded := fp.Serialize()

	if encoded[0] != fingerprintMagic {
		t.Errorf("byte 0 = 0x%02x, want magic 0x%02x", encoded[0], fingerprintMagic)
	}
	if encoded[1] != fingerprintVersion {
		t.Errorf("byte 1 = 0x%02x, want version 0x%02x", encoded[1], fingerprintVersion)
	}
	wantLen := fingerprintHeaderSize + bloomSizeBytes + len(fp.structData)
	if len(encoded) != wantLen {
		t.Errorf("Serialize length = %d, want %d", len(encoded), wantLen)
	}
}

func TestDeserializeRejectsShortBuffer(t *testing.T) {
	_, err := Deserialize([]byte{0x48, 0x01})
	if !IsTruncatedStruct(err) {
		t.Errorf("Deserialize(2 bytes) error = %v, want IsTruncatedStruct", err)
	}
}

func TestDeserializeRejectsEmptyBuffer(t *testing.T) {
	_, err := Deserialize(nil)
	if !IsTruncatedStruct(err) {
		t.Errorf("Deserialize(nil) error = %v, want IsTruncatedStruct", err)
	}
}

func TestDeserializeRejectsBadMagic(t *testing.T) {
	fp, err := Generate([]byte("data"), DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	encoded := fp.Serialize()
	encoded[0] = 0xFF

	_, err = Deserialize(encoded)
	if !IsBadMagic(err) {
		t.Errorf("Deserialize with corrupted magic error = %v, want IsBadMagic", err)
	}
}

func TestDeserializeRejectsUnsupportedVersion(t *testing.T) {
	fp, err := Generate([]byte("data"), DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	encoded := fp.Serialize()
	encoded[1] = 0x99

	_, err = Deserialize(encoded)
	if !IsUnsupportedVersion(err) {
		t.Errorf("Deserialize with bad version error = %v, want IsUnsupportedVersion", err)
	}
}

func TestDeserializeRejectsTruncatedStructSection(t *testing.T) {
	fp, err := Generate([]byte("enough data to produce a nonzero struct section padding out the content"), DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	encoded := fp.Serialize()
	if len(fp.structData) == 0 {
		t.Skip("generated fingerprint has no structural data to truncate")
	}

	truncated := encoded[:len(encoded)-1]
	_, err = Deserialize(truncated)
	if !IsTruncatedStruct(err) {
		t.Errorf("Deserialize(truncated struct section) error = %v, want IsTruncatedStruct", err)
	}
}

func TestDeserializeIgnoresTrailingBytes(t *testing.T) {
	fp, err := Generate([]byte("data with trailing framing"), DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	encoded := append(fp.Serialize(), 0xDE, 0xAD, 0xBE, 0xEF)

	decoded, err := Deserialize(encoded)
	if err != nil {
		t.Fatalf("Deserialize with trailing bytes: %v", err)
	}
	if string(decoded.structData) != string(fp.structData) {
		t.Error("trailing bytes corrupted the decoded structural data")
	}
}

func TestFingerprintSize(t *testing.T) {
	fp, err := Generate([]byte("size check"), DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if fp.Size() != len(fp.Serialize()) {
		t.Errorf("Size() = %d, len(Serialize()) = %d", fp.Size(), len(fp.Serialize()))
	}
}

func TestFingerprintStringDoesNotPanic(t *testing.T) {
	fp, err := Generate([]byte("string check"), DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if fp.String() == "" {
		t.Error("String() returned empty string")
	}
}
