package aamva

import "licensedecoder/pkg/aamva/aamvatest"

var (
	barcode      = aamvatest.Barcode
	arizonaLines = aamvatest.ArizonaLines
)
