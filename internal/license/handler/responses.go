package handler

import (
	"errors"

	"licensedecoder/internal/license/service"
	"licensedecoder/pkg/aamva"
	dErrors "licensedecoder/pkg/domain-errors"
)

// BatchDecodeResponse is the HTTP response for POST /licenses/decode/batch.
type BatchDecodeResponse struct {
	Results []BatchItemResponse `json:"results"`
	Failed  int                 `json:"failed"`
}

// BatchItemResponse holds either a record or an error for one barcode.
type BatchItemResponse struct {
	Index            int           `json:"index"`
	Record           *aamva.Record `json:"record,omitempty"`
	Error            string        `json:"error,omitempty"`
	ErrorDescription string        `json:"error_description,omitempty"`
}

// FromBatchResults converts service results to an HTTP response.
func FromBatchResults(results []service.BatchResult) *BatchDecodeResponse {
	resp := &BatchDecodeResponse{Results: make([]BatchItemResponse, 0, len(results))}
	for _, res := range results {
		item := BatchItemResponse{Index: res.Index}
		if res.Err != nil {
			item.Error, item.ErrorDescription = errorFields(res.Err)
			resp.Failed++
		} else {
			rec := res.License.Record()
			item.Record = &rec
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}

// HeaderResponse is the decoded barcode preamble.
type HeaderResponse struct {
	FileType                   string `json:"file_type"`
	IssuerIdentificationNumber int    `json:"issuer_identification_number"`
	VersionNumber              int    `json:"version_number"`
	JurisdictionVersion        int    `json:"jurisdiction_version,omitempty"`
	SubfileType                string `json:"subfile_type,omitempty"`
	SubfileOffset              int    `json:"subfile_offset"`
	SubfileLength              int    `json:"subfile_length"`
}

// InspectResponse is the HTTP response for POST /licenses/inspect.
type InspectResponse struct {
	Header                 HeaderResponse    `json:"header"`
	Fields                 map[string]string `json:"fields"`
	Record                 *aamva.Record     `json:"record"`
	RecordError            string            `json:"record_error,omitempty"`
	RecordErrorDescription string            `json:"record_error_description,omitempty"`
}

// FromInspection converts a service inspection to an HTTP response.
func FromInspection(in *service.Inspection) *InspectResponse {
	fields := make(map[string]string, len(in.Fields))
	for k, v := range in.Fields {
		fields[string(k)] = v
	}
	resp := &InspectResponse{
		Header: HeaderResponse{
			FileType:                   in.Header.FileType,
			IssuerIdentificationNumber: in.Header.IssuerIdentificationNumber,
			VersionNumber:              in.Header.VersionNumber,
			JurisdictionVersion:        in.Header.JurisdictionVersion,
			SubfileType:                in.Header.SubfileType,
			SubfileOffset:              in.Header.SubfileOffset,
			SubfileLength:              in.Header.SubfileLength,
		},
		Fields: fields,
		Record: in.Record,
	}
	if in.RecordErr != nil {
		resp.RecordError, resp.RecordErrorDescription = errorFields(in.RecordErr)
	}
	return resp
}

// errorFields mirrors httputil.WriteError: internal errors get no description.
func errorFields(err error) (string, string) {
	var de *dErrors.Error
	if !errors.As(err, &de) || de.Code == dErrors.CodeInternal {
		return string(dErrors.CodeInternal), ""
	}
	return string(de.Code), de.Message
}
