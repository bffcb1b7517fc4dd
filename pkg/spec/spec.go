package spec

const (
	// === IDENTITY & VERSIONING ===
	VersionV1 = "1.0.0"

	// === ENGINE SPECS ===
	SampleRate    = 44100.0
	SafetyCeiling = 2647 // indeks 0..2646
	Midpoint      = 128
	BitDepth      = 8
	Channels      = 1

	// Frekuensi nada yang dipakai
	ToneLegacy = 588.0
	ToneMorse  = 600.0

	// === LITERAL FORMAT ===
	ArrayName     = "WAV"
	ElementType   = "u8"
	WrapIndent    = "    "
	WrapCellWidth = 3

	// === OPUS EXPORT (Hardix Standard: 48kHz, frame 20ms) ===
	OpusSampleRate = 48000
	OpusChannels   = 1
	OpusFrameMs    = 20
	OpusMaxPacket  = 1500

	// === MORSE ===
	MorseWPM           = 20
	MorseElementsWord  = 50 // "PARIS"
	MorseReleaseLength = 220 // ~5ms @ 44.1kHz
	MorseCallSign      = "KD9KJV"
	MorseOutput        = "output.wav"

	// Tag fingerprint tabel
	FingerprintPrefix = "WAVT-V1-"
)
