package api

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus_CarriesErrorInfo(t *testing.T) {
	tests := []struct {
		err      *common.AuthError
		wantCode codes.Code
		wantText string
	}{
		{common.NewAlreadyExists(), codes.AlreadyExists, "Bad Request"},
		{common.NewInvalidCredentials(), codes.Unauthenticated, "Bad Request"},
		{common.NewTokenExpired(), codes.Unauthenticated, "Unauthorized"},
		{common.NewTokenInvalid(), codes.Unauthenticated, "Unauthorized"},
		{common.NewValidation("email is required"), codes.InvalidArgument, "Bad Request"},
		{common.NewInternal(), codes.Internal, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			st, ok := status.FromError(ToStatus(tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.err.Message, st.Message())

			require.Len(t, st.Details(), 1)
			info, ok := st.Details()[0].(*errdetails.ErrorInfo)
			require.True(t, ok)
			assert.Equal(t, string(tt.err.Kind), info.Reason)
			assert.Equal(t, "gophauth", info.Domain)
			assert.Equal(t, tt.wantText, info.Metadata["error"])

			back, ok := FromStatus(ToStatus(tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.err, back)
		})
	}
}

func TestToStatus_PlainErrorIsInternal(t *testing.T) {
	st, _ := status.FromError(ToStatus(errors.New("pgx: secret driver text")))
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "Internal server error", st.Message())
}

func TestFromStatus_ForeignErrors(t *testing.T) {
	ae, ok := FromStatus(status.Error(codes.Unavailable, "connection refused"))
	assert.False(t, ok)
	assert.Equal(t, common.KindInternal, ae.Kind)
	assert.Equal(t, "connection refused", ae.Message)

	ae, ok = FromStatus(errors.New("boom"))
	assert.False(t, ok)
	assert.Equal(t, "boom", ae.Message)
}
