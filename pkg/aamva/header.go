package aamva

const (
	minHeaderLen   = 17
	headerLenV1    = 29
	headerLenV2    = 31
	ansiFileType   = "ANSI "
	ansiOffsetSkew = 2
)

// Header is the fixed-width preamble of a barcode payload.
type Header struct {
	ComplianceIndicator  byte
	DataElementSeparator byte
	RecordSeparator      byte
	SegmentTerminator    byte

	FileType                   string
	IssuerIdentificationNumber int
	VersionNumber              int

	// JurisdictionVersion and SubfileType are only populated when
	// VersionNumber >= 2.
	JurisdictionVersion int
	SubfileType         string

	// SubfileOffset already includes the ANSI correction.
	SubfileOffset int
	SubfileLength int
}

// DecodeHeader parses the preamble of raw. Version 0 and 1 headers carry no
// jurisdiction version; everything after the version number shifts by two
// bytes for version 2 and later.
func DecodeHeader(raw string) (Header, error) {
	if len(raw) < minHeaderLen {
		return Header{}, formatErrorf("header needs at least %d bytes, got %d", minHeaderLen, len(raw))
	}

	h := Header{
		ComplianceIndicator:  raw[0],
		DataElementSeparator: raw[1],
		RecordSeparator:      raw[2],
		SegmentTerminator:    raw[3],
		FileType:             raw[4:9],
	}

	var err error
	if h.IssuerIdentificationNumber, err = fixedInt(raw, 9, 15, "issuer identification number"); err != nil {
		return Header{}, err
	}
	if h.VersionNumber, err = fixedInt(raw, 15, 17, "version number"); err != nil {
		return Header{}, err
	}

	if h.VersionNumber <= 1 {
		if len(raw) < headerLenV1 {
			return Header{}, formatErrorf("version %d header needs %d bytes, got %d", h.VersionNumber, headerLenV1, len(raw))
		}
		if h.SubfileOffset, err = fixedInt(raw, 21, 25, "subfile offset"); err != nil {
			return Header{}, err
		}
		if h.SubfileLength, err = fixedInt(raw, 25, 29, "subfile length"); err != nil {
			return Header{}, err
		}
	} else {
		if len(raw) < headerLenV2 {
			return Header{}, formatErrorf("version %d header needs %d bytes, got %d", h.VersionNumber, headerLenV2, len(raw))
		}
		if h.JurisdictionVersion, err = fixedInt(raw, 17, 19, "jurisdiction version"); err != nil {
			return Header{}, err
		}
		h.SubfileType = raw[21:23]
		if h.SubfileOffset, err = fixedInt(raw, 23, 27, "subfile offset"); err != nil {
			return Header{}, err
		}
		if h.SubfileLength, err = fixedInt(raw, 27, 31, "subfile length"); err != nil {
			return Header{}, err
		}
	}

	if h.FileType == ansiFileType {
		h.SubfileOffset += ansiOffsetSkew
	}
	return h, nil
}

// fixedInt parses raw[start:end] as an unsigned decimal. Signs and spaces are
// rejected.
func fixedInt(raw string, start, end int, name string) (int, error) {
	s := raw[start:end]
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, formatErrorf("%s %q at [%d:%d] is not numeric", name, s, start, end)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
