package preflight

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"

	"github.com/Azure/tierdeploy/pkg/env"
	"github.com/Azure/tierdeploy/pkg/util/pem"
)

var keyBits = 4096

// EnsureSSHKey returns the authorized_keys form of the public key for the
// key pair at path. A missing public key is derived from the private key,
// which may be in PEM or OpenSSH format and must not have a passphrase; when
// both are missing a new RSA key pair without passphrase is written.
func EnsureSSHKey(log *logrus.Entry, path string) (string, error) {
	path, err := env.ExpandHome(path)
	if err != nil {
		return "", err
	}
	pubPath := path + ".pub"

	b, err := os.ReadFile(pubPath)
	switch {
	case err == nil:
		pub, _, _, _, err := ssh.ParseAuthorizedKey(b)
		if err != nil {
			return "", fmt.Errorf("%s: %w", pubPath, err)
		}
		log.Infof("using existing SSH public key %s", pubPath)
		return authorizedKey(pub), nil

	case !errors.Is(err, fs.ErrNotExist):
		return "", err
	}

	b, err = os.ReadFile(path)
	switch {
	case err == nil:
		signer, err := ssh.ParsePrivateKey(b)
		if err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		pub, err := writePublicKey(pubPath, signer.PublicKey())
		if err != nil {
			return "", err
		}
		log.Infof("derived SSH public key %s from existing private key", pubPath)
		return pub, nil

	case !errors.Is(err, fs.ErrNotExist):
		return "", err
	}

	log.Infof("generating %d-bit RSA SSH key pair at %s", keyBits, path)

	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return "", err
	}

	b, err = pem.Encode(key)
	if err != nil {
		return "", err
	}

	err = os.WriteFile(path, b, 0o600)
	if err != nil {
		return "", err
	}

	pub, err := ssh.NewPublicKey(&key.PublicKey)
	if err != nil {
		return "", err
	}

	return writePublicKey(pubPath, pub)
}

func writePublicKey(path string, pub ssh.PublicKey) (string, error) {
	err := os.WriteFile(path, ssh.MarshalAuthorizedKey(pub), 0o644)
	if err != nil {
		return "", err
	}

	return authorizedKey(pub), nil
}

func authorizedKey(pub ssh.PublicKey) string {
	return strings.TrimSpace(string(ssh.MarshalAuthorizedKey(pub)))
}
