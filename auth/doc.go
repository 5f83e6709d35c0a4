// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential hashing and session token generation.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

CheckPassword returns ErrInvalidCredentials on any mismatch, so login
handlers report the same error for a wrong password and a missing user.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 encoded without padding. They carry no embedded
claims; each token is an opaque key into the sessions table, which is what
lets logout revoke a session server-side.

# User IDs

	id := auth.NewUserID()

UUIDv4 strings used as primary keys for user records.
*/
package auth
