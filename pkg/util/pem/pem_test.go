package pem

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PEM", func() {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	Expect(err).ToNot(HaveOccurred())

	Describe("encoding keys", func() {
		It("succeeds", func() {
			keyOut, err := Encode(key)
			Expect(err).ToNot(HaveOccurred())
			Expect(keyOut).To(ContainSubstring("BEGIN RSA PRIVATE KEY"))
		})
	})

	Describe("encoding multiple public keys", func() {
		It("succeeds", func() {
			keysOut, err := Encode(&key.PublicKey, &key.PublicKey)
			Expect(err).ToNot(HaveOccurred())
			Expect(bytes.Count(keysOut, []byte("BEGIN RSA PUBLIC KEY"))).To(Equal(2))
		})
	})
})

func TestPEM(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PEM Suite")
}
