package zpay

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// Sign computes the gateway's MD5 signature over a parameter set:
// drop sign/sign_type and empty values, sort the remaining keys by byte
// order, join as k1=v1&k2=v2 with raw (unencoded) values, append the
// merchant key, and hash. The digest is lowercase hex.
//
// The same routine backs both outgoing request signing and inbound
// notification verification so the two call sites can never drift.
func Sign(params map[string]string, key string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == "sign" || k == "sign_type" || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	b.WriteString(key)

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// VerifySign checks the sign field supplied by the counterparty against a
// recomputed digest. The comparison is case-insensitive; some gateways
// send uppercase hex.
func VerifySign(params map[string]string, key string) bool {
	supplied := params["sign"]
	if supplied == "" {
		return false
	}
	return strings.EqualFold(supplied, Sign(params, key))
}
