// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package special

import (
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// RingSetter is satisfied by ring-signature instances: a ring signature
// is keyed not by one secret or one public key but by a whole list of
// candidate signers' public keys, a shape none of the generic category
// contracts anticipate.
type RingSetter interface {
	SetRing(ring [][]byte) error
}

// SignerIndexSetter provides the signer's position within the ring (sign
// direction only — a verifier never learns which member signed).
type SignerIndexSetter interface {
	SetSignerIndex(idx int) error
}

const (
	compressedPubKeySize = 33
	scalarSize           = 32
)

var ringCurve = elliptic.P256()

// lsagSignature mirrors parsdao-pars/ring's LSAGSignature exactly: a key
// image plus one challenge and one response scalar per ring member.
type lsagSignature struct {
	KeyImage []byte
	C        []*big.Int
	S        []*big.Int
}

// ringInstance implements LSAG (Linkable Spontaneous Anonymous Group)
// ring signatures, ported from parsdao-pars/ring's EVM precompile: the
// same sign/verify algorithm (key image, per-member challenge-response
// chain closing back on itself) runs unchanged, only the curve changes —
// the precompile uses secp256k1 via github.com/luxfi/crypto/secp256k1,
// this adapter uses crypto/elliptic's P-256 since the standard library
// carries no secp256k1 implementation. elliptic.Curve's ScalarBaseMult/
// ScalarMult/Add/Params methods are the same shape the teacher's
// secp256k1.S256() exposes, so the signing and verification math below
// is otherwise a direct port; MarshalCompressed/UnmarshalCompressed
// (Go's stdlib point-compression, added in Go 1.15) replace the
// teacher's CompressPubkey/DecompressPubkey.
//
// isInverse selects verify (true: SetRing provides the ring, Feed
// accumulates signature||message, Result returns ErrAuthenticationFailed
// on a bad signature or nil on success) vs sign (false: SetKey provides
// the signer's private key, SetRing the ring, SetSignerIndex the
// signer's position, Feed the message, Result the serialized signature).
type ringInstance struct {
	isInverse bool
	ring      [][]byte
	signerSk  []byte
	signerIdx int
	buf       []byte
	finalized bool
}

func newRingInstance(isInverse bool) (algorithm.Instance, error) {
	return &ringInstance{isInverse: isInverse}, nil
}

func (r *ringInstance) SetKey(key []byte) error {
	if len(key) != scalarSize {
		return algorithm.ErrInvalidParameter
	}
	r.signerSk = key
	return nil
}

func (r *ringInstance) SetRing(ring [][]byte) error {
	if len(ring) < 2 {
		return algorithm.ErrInvalidParameter
	}
	r.ring = ring
	return nil
}

func (r *ringInstance) SetSignerIndex(idx int) error {
	if idx < 0 {
		return algorithm.ErrInvalidParameter
	}
	r.signerIdx = idx
	return nil
}

func (r *ringInstance) Feed(data []byte) error {
	if r.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	r.buf = append(r.buf, data...)
	return nil
}

func (r *ringInstance) Result() ([]byte, error) {
	if r.finalized {
		return nil, algorithm.ErrFeedAfterFinalize
	}
	r.finalized = true

	if r.isInverse {
		return r.verify()
	}
	return r.sign()
}

func (r *ringInstance) sign() ([]byte, error) {
	if r.ring == nil || r.signerSk == nil {
		return nil, algorithm.ErrInvalidParameter
	}
	if r.signerIdx >= len(r.ring) {
		return nil, algorithm.ErrInvalidParameter
	}
	sig, err := lsagSign(r.ring, r.signerSk, r.signerIdx, r.buf)
	if err != nil {
		return nil, err
	}
	return sig.serialize(), nil
}

func (r *ringInstance) verify() ([]byte, error) {
	if r.ring == nil {
		return nil, algorithm.ErrInvalidParameter
	}
	n := len(r.ring)
	sigLen := compressedPubKeySize + n*scalarSize*2
	if len(r.buf) < sigLen {
		return nil, algorithm.ErrInvalidEncoding
	}
	sig, err := parseLSAGSignature(r.buf[:sigLen], n)
	if err != nil {
		return nil, algorithm.ErrInvalidEncoding
	}
	message := r.buf[sigLen:]
	if !lsagVerify(r.ring, sig, message) {
		return nil, algorithm.ErrAuthenticationFailed
	}
	return nil, nil
}

func lsagSign(ring [][]byte, signerSk []byte, signerIdx int, message []byte) (*lsagSignature, error) {
	n := len(ring)
	curve := ringCurve

	x := new(big.Int).SetBytes(signerSk)

	pubX, pubY := curve.ScalarBaseMult(x.Bytes())
	signerPk := elliptic.MarshalCompressed(curve, pubX, pubY)

	hp := hashToPoint(signerPk)
	imgX, imgY := curve.ScalarMult(hp.X, hp.Y, x.Bytes())
	keyImage := elliptic.MarshalCompressed(curve, imgX, imgY)

	c := make([]*big.Int, n)
	s := make([]*big.Int, n)

	alpha, err := rand.Int(rand.Reader, curve.Params().N)
	if err != nil {
		return nil, err
	}

	Lx, Ly := curve.ScalarBaseMult(alpha.Bytes())
	Rx, Ry := curve.ScalarMult(hp.X, hp.Y, alpha.Bytes())

	nextIdx := (signerIdx + 1) % n
	c[nextIdx] = hashRing(message, Lx, Ly, Rx, Ry)

	for i := 1; i < n; i++ {
		idx := (signerIdx + i) % n

		sv, err := rand.Int(rand.Reader, curve.Params().N)
		if err != nil {
			return nil, err
		}
		s[idx] = sv

		pkX, pkY := elliptic.UnmarshalCompressed(curve, ring[idx])
		if pkX == nil {
			return nil, algorithm.ErrInvalidParameter
		}

		sGx, sGy := curve.ScalarBaseMult(s[idx].Bytes())
		cPx, cPy := curve.ScalarMult(pkX, pkY, c[idx].Bytes())
		Lx, Ly = curve.Add(sGx, sGy, cPx, cPy)

		hpIdx := hashToPoint(ring[idx])
		sHx, sHy := curve.ScalarMult(hpIdx.X, hpIdx.Y, s[idx].Bytes())
		cIx, cIy := curve.ScalarMult(imgX, imgY, c[idx].Bytes())
		Rx, Ry = curve.Add(sHx, sHy, cIx, cIy)

		next := (idx + 1) % n
		if next != signerIdx {
			c[next] = hashRing(message, Lx, Ly, Rx, Ry)
		}
	}

	if c[signerIdx] == nil {
		c[signerIdx] = hashRing(message, Lx, Ly, Rx, Ry)
	}

	s[signerIdx] = new(big.Int).Mul(c[signerIdx], x)
	s[signerIdx].Mod(s[signerIdx], curve.Params().N)
	s[signerIdx].Sub(alpha, s[signerIdx])
	s[signerIdx].Mod(s[signerIdx], curve.Params().N)

	return &lsagSignature{KeyImage: keyImage, C: c, S: s}, nil
}

func lsagVerify(ring [][]byte, sig *lsagSignature, message []byte) bool {
	n := len(ring)
	curve := ringCurve

	imgX, imgY := elliptic.UnmarshalCompressed(curve, sig.KeyImage)
	if imgX == nil {
		return false
	}

	cPrev := sig.C[0]
	for i := 0; i < n; i++ {
		pkX, pkY := elliptic.UnmarshalCompressed(curve, ring[i])
		if pkX == nil {
			return false
		}

		sGx, sGy := curve.ScalarBaseMult(sig.S[i].Bytes())
		cPx, cPy := curve.ScalarMult(pkX, pkY, cPrev.Bytes())
		Lx, Ly := curve.Add(sGx, sGy, cPx, cPy)

		hp := hashToPoint(ring[i])
		sHx, sHy := curve.ScalarMult(hp.X, hp.Y, sig.S[i].Bytes())
		cIx, cIy := curve.ScalarMult(imgX, imgY, cPrev.Bytes())
		Rx, Ry := curve.Add(sHx, sHy, cIx, cIy)

		cNext := hashRing(message, Lx, Ly, Rx, Ry)

		if i == n-1 {
			return cNext.Cmp(sig.C[0]) == 0
		}
		cPrev = cNext
	}
	return false
}

type point struct {
	X, Y *big.Int
}

func hashToPoint(pk []byte) *point {
	h := sha256.Sum256(pk)
	x, y := ringCurve.ScalarBaseMult(h[:])
	return &point{X: x, Y: y}
}

func hashRing(msg []byte, Lx, Ly, Rx, Ry *big.Int) *big.Int {
	h := sha256.New()
	h.Write(msg)
	h.Write(padTo32(Lx.Bytes()))
	h.Write(padTo32(Ly.Bytes()))
	h.Write(padTo32(Rx.Bytes()))
	h.Write(padTo32(Ry.Bytes()))
	return new(big.Int).SetBytes(h.Sum(nil))
}

func padTo32(b []byte) []byte {
	if len(b) >= 32 {
		return b
	}
	padded := make([]byte, 32)
	copy(padded[32-len(b):], b)
	return padded
}

func (sig *lsagSignature) serialize() []byte {
	n := len(sig.C)
	out := make([]byte, compressedPubKeySize+n*scalarSize*2)
	copy(out, sig.KeyImage)

	offset := compressedPubKeySize
	for i := 0; i < n; i++ {
		copy(out[offset:], padTo32(sig.C[i].Bytes()))
		offset += scalarSize
	}
	for i := 0; i < n; i++ {
		copy(out[offset:], padTo32(sig.S[i].Bytes()))
		offset += scalarSize
	}
	return out
}

func parseLSAGSignature(data []byte, ringSize int) (*lsagSignature, error) {
	expectedLen := compressedPubKeySize + ringSize*scalarSize*2
	if len(data) < expectedLen {
		return nil, algorithm.ErrInvalidEncoding
	}

	sig := &lsagSignature{
		KeyImage: make([]byte, compressedPubKeySize),
		C:        make([]*big.Int, ringSize),
		S:        make([]*big.Int, ringSize),
	}
	copy(sig.KeyImage, data[:compressedPubKeySize])

	offset := compressedPubKeySize
	for i := 0; i < ringSize; i++ {
		sig.C[i] = new(big.Int).SetBytes(data[offset : offset+scalarSize])
		offset += scalarSize
	}
	for i := 0; i < ringSize; i++ {
		sig.S[i] = new(big.Int).SetBytes(data[offset : offset+scalarSize])
		offset += scalarSize
	}
	return sig, nil
}

// RingDescriptor declares LSAG ring signatures over P-256.
var RingDescriptor = &algorithm.Descriptor{
	Name:         "LSAG-Ring-P256",
	InternalName: "lsag-ring-p256",
	Category:     metadata.CategorySpecial,
	SubCategory:  "ring-signature",

	Inventor:    "Joseph K. Liu, Victor K. Wei, Duncan S. Wong",
	Year:        2004,
	Country:     metadata.CountryMulti,
	Description: "Linkable Spontaneous Anonymous Group signature: any ring member can sign on behalf of the group without revealing which one, while the key image lets two signatures from the same signer be linked without identifying them.",

	KeySizes: []metadata.KeySize{{Min: 32, Max: 32, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityResearch,

	Factory: newRingInstance,
}
