package aamva

// Field is the canonical attribute name an element code resolves to.
type Field string

const (
	FieldName                  Field = "Name"
	FieldLastName              Field = "LastName"
	FieldFirstName             Field = "FirstName"
	FieldMiddleName            Field = "MiddleName"
	FieldSex                   Field = "Sex"
	FieldHeight                Field = "Height"
	FieldEyeColor              Field = "EyeColor"
	FieldAddress               Field = "Address"
	FieldCity                  Field = "City"
	FieldState                 Field = "State"
	FieldZipCode               Field = "ZipCode"
	FieldZipcode               Field = "Zipcode" // DAP; distinct from ZipCode and not read by Normalize
	FieldCountry               Field = "Country"
	FieldDOB                   Field = "DOB"
	FieldDriverLicenseNumber   Field = "DriverLicenseNumber"
	FieldLicenseIssuedDate     Field = "LicenseIssuedDate"
	FieldLicenseExpirationDate Field = "LicenseExpirationDate"
)

// Several jurisdictions use different codes for the same attribute.
var fieldCodes = map[string]Field{
	"DAA":   FieldName,
	"DLDAA": FieldName,
	"DAB":   FieldLastName,
	"DCS":   FieldLastName,
	"DAC":   FieldFirstName,
	"DCT":   FieldFirstName,
	"DAD":   FieldMiddleName,

	"DBC": FieldSex,
	"DAU": FieldHeight,
	"DAY": FieldEyeColor,

	"DAG": FieldAddress,
	"DAI": FieldCity,
	"DAN": FieldCity,
	"DAJ": FieldState,
	"DAO": FieldState,
	"DAK": FieldZipCode,
	"DAP": FieldZipcode,
	"DCG": FieldCountry,

	"DBB": FieldDOB,
	"DAQ": FieldDriverLicenseNumber,
	"DBD": FieldLicenseIssuedDate,
	"DBA": FieldLicenseExpirationDate,
}

// Lookup resolves an element code to its canonical field.
func Lookup(code string) (Field, bool) {
	f, ok := fieldCodes[code]
	return f, ok
}

// RawFields maps canonical fields to their untrimmed element values.
type RawFields map[Field]string

// Get returns the raw value for f and whether it was present.
func (r RawFields) Get(f Field) (string, bool) {
	v, ok := r[f]
	return v, ok
}

func (r RawFields) clone() RawFields {
	out := make(RawFields, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
