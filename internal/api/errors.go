package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCCode maps an error kind onto the closest gRPC status code.
func GRPCCode(kind common.ErrorKind) codes.Code {
	switch kind {
	case common.KindAlreadyExists:
		return codes.AlreadyExists
	case common.KindInvalidCredentials, common.KindTokenExpired, common.KindTokenInvalid:
		return codes.Unauthenticated
	case common.KindValidation:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

// ToStatus converts err into a gRPC status error. An *AuthError keeps its
// message and travels as an ErrorInfo detail; anything else becomes a
// generic Internal error.
func ToStatus(err error) error {
	var ae *common.AuthError
	if !errors.As(err, &ae) {
		ae = common.NewInternal()
	}

	st := status.New(GRPCCode(ae.Kind), ae.Message)
	withDetails, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: string(ae.Kind),
		Domain: ErrorDomain,
		Metadata: map[string]string{
			"code":  strconv.Itoa(ae.Code),
			"error": ae.Status(),
		},
	})
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// FromStatus recovers the *AuthError carried by a status error. Statuses
// without our ErrorInfo (transport failures, deadlines) are reported with
// the Internal kind and the status message; ok is false in that case.
func FromStatus(err error) (ae *common.AuthError, ok bool) {
	st, isStatus := status.FromError(err)
	if !isStatus {
		return &common.AuthError{Kind: common.KindInternal, Message: err.Error(), Code: http.StatusInternalServerError}, false
	}

	for _, d := range st.Details() {
		info, isInfo := d.(*errdetails.ErrorInfo)
		if !isInfo || info.GetDomain() != ErrorDomain {
			continue
		}
		code, convErr := strconv.Atoi(info.GetMetadata()["code"])
		if convErr != nil {
			code = http.StatusInternalServerError
		}
		return &common.AuthError{Kind: common.ErrorKind(info.GetReason()), Message: st.Message(), Code: code}, true
	}

	return &common.AuthError{Kind: common.KindInternal, Message: st.Message(), Code: http.StatusInternalServerError}, false
}
