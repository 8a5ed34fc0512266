// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"sync"
	"testing"
)

func TestSigner_SumMatchesHMAC(t *testing.T) {
	key := "secret-key"
	s := NewSigner(key)
	data := []byte("test-data")

	sum1 := s.Sum(data)
	sum2 := s.Sum(data)
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	if expected := h.Sum(nil); !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestSigner_SignAndVerify(t *testing.T) {
	s := NewSigner("k")
	body := []byte(`{"id":"abc"}`)

	sig := s.Sign(body)
	if sig != HashString(string(body), "k") {
		t.Fatalf("Sign and HashString disagree: %s", sig)
	}
	if !s.Verify(body, sig) {
		t.Fatal("expected signature to verify")
	}
	if s.Verify([]byte(`{"id":"abd"}`), sig) {
		t.Fatal("signature must not verify for other data")
	}
	if s.Verify(body, "not-hex") {
		t.Fatal("malformed signature must not verify")
	}
}

func TestSigner_Enabled(t *testing.T) {
	if NewSigner("").Enabled() {
		t.Error("empty key must disable signing")
	}
	if !NewSigner("k").Enabled() {
		t.Error("non-empty key must enable signing")
	}
	var nilSigner *Signer
	if nilSigner.Enabled() {
		t.Error("nil signer must be disabled")
	}
}

func TestSigner_Concurrent(t *testing.T) {
	s := NewSigner("k")
	want := s.Sign([]byte("payload"))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := s.Sign([]byte("payload")); got != want {
				t.Errorf("concurrent sign mismatch: %s", got)
			}
		}()
	}
	wg.Wait()
}
