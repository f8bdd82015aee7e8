// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dlah

import "math/bits"

// windowSize is the fixed BuzHash window, in bytes.
const windowSize = 64

// buzhashTable is the 256-entry table of 64-bit constants driving the
// rolling hash. Indexed by byte value. The values are fixed, process-wide,
// and deterministic across platforms and builds: changing them changes
// every fingerprint this package has ever produced.
var buzhashTable = [256]uint64{
	0xa1cbf1a4c7bdb900, 0x38871c233fee3d4d, 0x9678a3d072d5641a, 0x7cdc27795233ab06,
	0x5fc8f82b674c6245, 0xbf8f254150e57e78, 0x255efcdff4992a41, 0xd08000ba3073fd87,
	0xa100f10496f50f6f, 0x5fbd5c5d1855f47e, 0xaadcc57697066dcd, 0x3135373b5483e9b5,
	0xf08e286bdbf5026b, 0x07794c274a3920a0, 0x00858263937561fa, 0x555a55118ef69301,
	0xf20df0f261253b35, 0xc9e34fea00d7baf1, 0x403f7f1d8da31704, 0x7dc8c7cf7cabf748,
	0x13510926dda98c7e, 0xe18d4375e6d4c69c, 0x96aa428f129988da, 0xff84fee83518e785,
	0xe2d8f5fdff2b3234, 0xc60b872f2351c2ad, 0xb86df787e03caf4c, 0x32ae23a029857db8,
	0x843b85e9487cf9e9, 0x9a2bb87348ea4b10, 0xd77600a047dd0e52, 0x9e586af19cf677a9,
	0xa773076145aae17f, 0x0d02b9bc4366fbc5, 0x552cea68b06a1d5f, 0x2cbd27284fba2bf1,
	0x80a59e603208e269, 0x7ecc5a7389314564, 0xf22ebac46f8cb90d, 0xb2fb0b6a6d472679,
	0x8ec496a6b0a68a31, 0xab33074116c467da, 0x78400bb55df5c482, 0x754f0927e0bdb3e5,
	0xe896b5e2d0223d91, 0x2c4e3acf17b30e49, 0x732d4ba8453c4f89, 0x2d2f0bdee927537b,
	0x3a411480be0921ea, 0xfe7ee341a6f4a1c8, 0x4ba2b1b24064313b, 0x2c4be82963673624,
	0x59eebba02bf8c769, 0xe15c4698472a0fc9, 0x44f0bc003adb1f97, 0xbaf3da7a8c861339,
	0x9ec26e58a4f701be, 0x56a8679e00d0e6cb, 0x4a3093c474b6c9d0, 0x60696b8515a68165,
	0xaf1a1ea52dfaaca6, 0xe4c505f30c4f68e1, 0x522d3a79dafca2e4, 0x19e6dcea0066cc80,
	0x7b54433af604f2d8, 0xd5c411bfa5783099, 0xfc4c951fceb4f64a, 0x66ebf1d12bb3e3d3,
	0x7ac141321cab1f11, 0x7809dd0d78b878d4, 0x04b581544a8aedfc, 0xb5c520363f4a0c89,
	0xda8d6c5fcca2f11f, 0x0fd8b0d774c10127, 0xd4f3e2a0321096c9, 0x643142a74d731e69,
	0x0d6b54dab281d682, 0x8a2fd11deec244ac, 0x8dec00b6583e877e, 0xdcef37c441371b2a,
	0x0e819713be99b37b, 0x5ba67c1322e4299e, 0x2dbd4e48a8036bd0, 0xccd0e86b3b66612f,
	0xb8795ef8e5f9d024, 0x10341039f1bfabe5, 0x22e9d3e43ec9eb09, 0x8a66d811cc3df6c2,
	0xc241c6dbb8ad9188, 0x18d40126d9e11406, 0x4f7bd2bd4451388b, 0x522dedc4cd8545b8,
	0xc4456ddfb631ebb5, 0xe2f16e9d701e3cba, 0x34b3d1c0bded20b3, 0x0761fbd5cccb90a3,
	0x64a384cd2aa5e8ad, 0x5bf4b03544cf4fd0, 0xf189abaf601a860a, 0x0b7b2b575aeeefee,
	0x2e38adfb2fd9a39d, 0xadc81049d9ddc81d, 0x412e5057f46f4b1f, 0x24b31b9e97d5fa78,
	0x8cc144eedfea357e, 0xac66c56bb31c8e5d, 0xffc861302fc23e1b, 0xd308b4fec730e188,
	0xe22e017da80dde5c, 0x0f029f96809b3621, 0xc2e7b50c31649e1d, 0x13506b173f2d49ac,
	0x1b976b1d9691da31, 0x8cdc68b080c0f665, 0x3a657ca201b3b21f, 0x5921d257c7438d00,
	0x900bacb774bb059b, 0xf7dbc862ad0091e4, 0x7c1bea27dee52458, 0x92ca737bc650d12d,
	0x9a827f3b98d3d79f, 0x0b7cb2fa62defc50, 0x9b13cf1737d82c51, 0x33ea7f6779870b16,
	0x340d38083132c324, 0x683885947cf22ae8, 0x9358be05935eea48, 0x4e79b4784ce8cc0a,
	0x8e54b01b0fc6636a, 0xff47c23396cc7e4f, 0xaff04476f3d41a95, 0x0248f0ecc026cdb5,
	0x3da8db6c697980e9, 0xe67b7edda7c76e30, 0x34a96806ece391e4, 0x3bcbf919a602af8e,
	0x31bdfe7d104811ac, 0xe421c377e5ed22ab, 0x0eceaba1f0199cf9, 0x644e5c430123476c,
	0xb051ec19687f1d3c, 0xc43c79e0c037d752, 0x6022a3ed0dc20a67, 0xae7472aae26626db,
	0xa6aa540affcc834e, 0xbc1b4b5253fa5b20, 0xbcf010e707a65580, 0xe4c7d8da40c5e50b,
	0xe6ce982b4f4d7e7e, 0x3f334a409a4f6549, 0xe8f61b798d568e20, 0x822de7e7817c0a32,
	0x9ed1713953360515, 0x1c5ca16dfe8440d8, 0x2425ba8b657f045b, 0xb2c731e77cf14681,
	0xd9c470c2ab2c3285, 0xe7b91bdae27bda4c, 0xd8f5e0af810a237d, 0xce0a56f1903a0211,
	0xaf018b36bbd25032, 0xe88cc9a1a77d5a59, 0xdeeb3869cc25b308, 0x9c2bb24150be0354,
	0x7ee879fa58f53247, 0x4efb1ca5fa5a4f74, 0x45ef561772d5624e, 0x4f419f12a9ffdfe7,
	0x30be6ebdad6c8c3b, 0x92923f6f30279cb4, 0xe88898c131adc2bf, 0x56246d5300db03c7,
	0xeab235f1c0e38bd4, 0x0eda128033aa910e, 0xde59cf6576474008, 0x014dc5306f73aca6,
	0xc93339128888e670, 0xed14e5e6a6a16f8c, 0x7cca152f69939b77, 0x637cc2cfac8c2b39,
	0x3baec0a2540e3c4e, 0x2b61988820532342, 0x6bf3bd817daadbee, 0x8c042a7e4bfe4b75,
	0x8044eed1780b8a30, 0xdcd81f8786b6bb4e, 0x1f4d7908907f0a6b, 0x655b5c7ac6f27946,
	0x69db30872e31cf60, 0x91c235ae5630aaf1, 0xb5a93c42f2fda476, 0xe9aba38cfa7509cd,
	0x2ce4bf6fbd7774e4, 0x27b1454e353ff56f, 0x72369e5486b03675, 0x556e5f52c0da9f70,
	0x039f8a678bc693cf, 0xf0280e32c8e7e6b6, 0x94cc835de3ac81bc, 0xc2fb476d47a5b5ff,
	0x6b026d763b436b49, 0xd4617830f8544205, 0xe8098987bc3199b8, 0x16a3b5917840aa21,
	0x361d244f521e679c, 0xf34c4df9b5c5c877, 0xc44cde26c2335ee5, 0x0312a543b04c7641,
	0xbf458afa34fcc7a7, 0xe3861cbe53890853, 0x0a738e024bb1fe5b, 0xa2ca45734065e091,
	0xb0b8032eb78bc3b3, 0xced9e6c507802233, 0xddd6c13303143f52, 0x9c6d010202a4a288,
	0xbecbe6bb9dcae04f, 0x7a9b2c258454da79, 0xee17c7ea30872682, 0xc86f546f5eb7e6c5,
	0xa16b26bc710e25cd, 0x5da73d4d603fb13d, 0x042d4d5661573011, 0x3de3ebca99119958,
	0x658c75e30045f3c9, 0xa1b9f38aa7e8676c, 0xd547d30de4eb7082, 0xab65fde8ed083590,
	0xc07b3aca09751fbb, 0x33fe6989b43de5d1, 0x8e3287bad2369f78, 0x7b9d22c1c36c9e62,
	0x77934faf34679af6, 0x06fcee74f75e5795, 0x3a891937f86fa791, 0x29f6a7b13a306b47,
	0xcc53824c2a7498f9, 0x86ccf9d4f15de139, 0xdfdcb834fc42f9ab, 0x9964a6989344a445,
	0x8e26e0e89578caa2, 0x99ccb2b8c4c18546, 0xbcc79b31ee56f096, 0x322cca88b960e40b,
	0x9ce50b0f668dfb49, 0x0e7d04691f50d096, 0xcdbea970f123642f, 0x4820c2d9345323bf,
	0x86c0e6b1f624cdb5, 0x7316274bfe90c1d0, 0x900200e57419f415, 0x396b641b8e1b7107,
	0x5424d3a3c97bf705, 0x1bea99641daac783, 0x5c66aa5abe775ab5, 0x05391a5808b8c8ec,
}

// rollingWindow maintains BuzHash state over a 64-byte sliding window. The
// zero value is a valid, empty window.
type rollingWindow struct {
	hash   uint64
	window [windowSize]byte
	pos    int  // next write position within window
	filled bool // true once windowSize bytes have been pushed
}

// full reports whether the window has received its windowSize'th byte yet.
// Per the rolling-hash contract, no trigger test is valid before this.
func (w *rollingWindow) full() bool {
	return w.filled
}

// push advances the rolling hash by one normalized byte, returning the
// updated hash. Before the window fills, no byte is evicted:
//
//	H <- rol_1(H) XOR T[b_in]
//
// Once full, each new byte evicts the byte currently occupying its slot:
//
//	H <- rol_1(H) XOR T[b_out] XOR T[b_in]
//
// (rol_64 of T[b_out], i.e. rotation by the window size mod 64, is the
// identity, so the evicted contribution is T[b_out] itself.)
func (w *rollingWindow) push(b byte) uint64 {
	w.hash = bits.RotateLeft64(w.hash, 1)

	if w.filled {
		w.hash ^= buzhashTable[w.window[w.pos]]
	}

	w.hash ^= buzhashTable[b]
	w.window[w.pos] = b
	w.pos++

	if w.pos == windowSize {
		w.pos = 0
		w.filled = true
	}

	return w.hash
}
