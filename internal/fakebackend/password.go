package fakebackend

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Seeded accounts are hashed on every New, so the cost is kept at
// the argon2id floor.
const (
	argonMemoryKB = 8 * 1024
	argonTime     = 1
	argonThreads  = 1
	argonSaltLen  = 16
	argonKeyLen   = 32
)

var errInvalidHash = errors.New("invalid argon2id hash")

// hashPassword encodes password as $argon2id$v=19$m=..,t=..,p=..$salt$key.
func hashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemoryKB, argonThreads, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemoryKB, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

func mustHash(password string) string {
	encoded, err := hashPassword(password)
	if err != nil {
		panic(err)
	}
	return encoded
}

// checkPassword reports whether password matches encoded. Malformed hashes
// never match.
func checkPassword(password, encoded string) bool {
	memory, iterations, threads, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false
	}
	computed := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, computed) == 1
}

func decodeHash(encoded string) (memory, iterations uint32, threads uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errInvalidHash
	}
	for _, kv := range strings.Split(parts[3], ",") {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return 0, 0, 0, nil, nil, errInvalidHash
		}
		v, perr := strconv.ParseUint(raw, 10, 32)
		if perr != nil {
			return 0, 0, 0, nil, nil, errInvalidHash
		}
		switch name {
		case "m":
			memory = uint32(v)
		case "t":
			iterations = uint32(v)
		case "p":
			if v > 255 {
				return 0, 0, 0, nil, nil, errInvalidHash
			}
			threads = uint8(v)
		}
	}
	if memory == 0 || iterations == 0 || threads == 0 {
		return 0, 0, 0, nil, nil, errInvalidHash
	}
	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return 0, 0, 0, nil, nil, errInvalidHash
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, errInvalidHash
	}
	return memory, iterations, threads, salt, key, nil
}
