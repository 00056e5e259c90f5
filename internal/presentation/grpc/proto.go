package grpc

// proto.go defines the gRPC server interface derived from
// vahana/origination/v1/origination.proto. This file serves as a stand-in
// for buf-generated code; the JSON codec serialises the application DTOs
// directly. Once `buf generate` is run, replace this file with the import
// from github.com/vahanafin/vahana/api/gen/go/vahana/origination/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vahanafin/vahana/internal/application/dto"
)

// Message types for the OriginationService. Aliased onto the application
// DTOs until protobuf types are generated.
type (
	SubmitApplicationRequest   = dto.SubmitApplicationRequest
	SubmitApplicationResponse  = dto.ApplicationResponse
	PrescreenApplicantRequest  = dto.PrescreenApplicantRequest
	PrescreenApplicantResponse = dto.ApplicationResponse
	DecideApplicationRequest   = dto.DecideApplicationRequest
	DecideApplicationResponse  = dto.ApplicationResponse
	DisburseLoanRequest        = dto.DisburseLoanRequest
	DisburseLoanResponse       = dto.CommissionStatementResponse
	QuoteInsuranceRequest      = dto.QuoteInsuranceRequest
	QuoteInsuranceResponse     = dto.InsurancePolicyResponse
	BindPolicyRequest          = dto.BindPolicyRequest
	BindPolicyResponse         = dto.InsurancePolicyResponse
	PayCommissionRequest       = dto.PayCommissionRequest
	PayCommissionResponse      = dto.CommissionStatementResponse
	GetApplicationRequest      = dto.GetApplicationRequest
	GetApplicationResponse     = dto.ApplicationResponse
	GetCommissionRequest       = dto.GetCommissionRequest
	GetCommissionResponse      = dto.CommissionStatementResponse
	ListApplicationsRequest    = dto.ListApplicationsRequest
	ListApplicationsResponse   = dto.ListApplicationsResponse
	GetQuotesRequest           = dto.GetQuotesRequest
	GetQuotesResponse          = dto.GetQuotesResponse
)

// OriginationServiceServer is the server API for OriginationService.
// It mirrors the proto interface from vahana.origination.v1.OriginationService.
type OriginationServiceServer interface {
	SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error)
	PrescreenApplicant(context.Context, *PrescreenApplicantRequest) (*PrescreenApplicantResponse, error)
	DecideApplication(context.Context, *DecideApplicationRequest) (*DecideApplicationResponse, error)
	DisburseLoan(context.Context, *DisburseLoanRequest) (*DisburseLoanResponse, error)
	QuoteInsurance(context.Context, *QuoteInsuranceRequest) (*QuoteInsuranceResponse, error)
	BindPolicy(context.Context, *BindPolicyRequest) (*BindPolicyResponse, error)
	PayCommission(context.Context, *PayCommissionRequest) (*PayCommissionResponse, error)
	GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error)
	GetCommission(context.Context, *GetCommissionRequest) (*GetCommissionResponse, error)
	ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error)
	GetQuotes(context.Context, *GetQuotesRequest) (*GetQuotesResponse, error)
	mustEmbedUnimplementedOriginationServiceServer()
}

// UnimplementedOriginationServiceServer provides forward-compatible default
// implementations.
type UnimplementedOriginationServiceServer struct{}

func (UnimplementedOriginationServiceServer) SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitApplication not implemented")
}
func (UnimplementedOriginationServiceServer) PrescreenApplicant(context.Context, *PrescreenApplicantRequest) (*PrescreenApplicantResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PrescreenApplicant not implemented")
}
func (UnimplementedOriginationServiceServer) DecideApplication(context.Context, *DecideApplicationRequest) (*DecideApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecideApplication not implemented")
}
func (UnimplementedOriginationServiceServer) DisburseLoan(context.Context, *DisburseLoanRequest) (*DisburseLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DisburseLoan not implemented")
}
func (UnimplementedOriginationServiceServer) QuoteInsurance(context.Context, *QuoteInsuranceRequest) (*QuoteInsuranceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuoteInsurance not implemented")
}
func (UnimplementedOriginationServiceServer) BindPolicy(context.Context, *BindPolicyRequest) (*BindPolicyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BindPolicy not implemented")
}
func (UnimplementedOriginationServiceServer) PayCommission(context.Context, *PayCommissionRequest) (*PayCommissionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PayCommission not implemented")
}
func (UnimplementedOriginationServiceServer) GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetApplication not implemented")
}
func (UnimplementedOriginationServiceServer) GetCommission(context.Context, *GetCommissionRequest) (*GetCommissionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCommission not implemented")
}
func (UnimplementedOriginationServiceServer) ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedOriginationServiceServer) GetQuotes(context.Context, *GetQuotesRequest) (*GetQuotesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetQuotes not implemented")
}
func (UnimplementedOriginationServiceServer) mustEmbedUnimplementedOriginationServiceServer() {}

// RegisterOriginationServiceServer registers the server with the gRPC server.
func RegisterOriginationServiceServer(s *grpclib.Server, srv OriginationServiceServer) {
	s.RegisterService(&_OriginationService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _OriginationService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "vahana.origination.v1.OriginationService",
	HandlerType: (*OriginationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SubmitApplication", Handler: _OriginationService_SubmitApplication_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "PrescreenApplicant", Handler: _OriginationService_PrescreenApplicant_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "DecideApplication", Handler: _OriginationService_DecideApplication_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "DisburseLoan", Handler: _OriginationService_DisburseLoan_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "QuoteInsurance", Handler: _OriginationService_QuoteInsurance_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "BindPolicy", Handler: _OriginationService_BindPolicy_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "PayCommission", Handler: _OriginationService_PayCommission_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "GetApplication", Handler: _OriginationService_GetApplication_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "GetCommission", Handler: _OriginationService_GetCommission_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "ListApplications", Handler: _OriginationService_ListApplications_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "GetQuotes", Handler: _OriginationService_GetQuotes_Handler},                   //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_SubmitApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).SubmitApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vahana.origination.v1.OriginationService/SubmitApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).SubmitApplication(ctx, req.(*SubmitApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_PrescreenApplicant_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PrescreenApplicantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).PrescreenApplicant(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vahana.origination.v1.OriginationService/PrescreenApplicant",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).PrescreenApplicant(ctx, req.(*PrescreenApplicantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_DecideApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecideApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).DecideApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vahana.origination.v1.OriginationService/DecideApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).DecideApplication(ctx, req.(*DecideApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_DisburseLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisburseLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).DisburseLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vahana.origination.v1.OriginationService/DisburseLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).DisburseLoan(ctx, req.(*DisburseLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_QuoteInsurance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuoteInsuranceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).QuoteInsurance(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vahana.origination.v1.OriginationService/QuoteInsurance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).QuoteInsurance(ctx, req.(*QuoteInsuranceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_BindPolicy_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(BindPolicyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).BindPolicy(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vahana.origination.v1.OriginationService/BindPolicy",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).BindPolicy(ctx, req.(*BindPolicyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_PayCommission_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PayCommissionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).PayCommission(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vahana.origination.v1.OriginationService/PayCommission",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).PayCommission(ctx, req.(*PayCommissionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_GetApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).GetApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vahana.origination.v1.OriginationService/GetApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).GetApplication(ctx, req.(*GetApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_GetCommission_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCommissionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).GetCommission(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vahana.origination.v1.OriginationService/GetCommission",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).GetCommission(ctx, req.(*GetCommissionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_ListApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).ListApplications(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vahana.origination.v1.OriginationService/ListApplications",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).ListApplications(ctx, req.(*ListApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_GetQuotes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetQuotesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).GetQuotes(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vahana.origination.v1.OriginationService/GetQuotes",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).GetQuotes(ctx, req.(*GetQuotesRequest))
	}
	return interceptor(ctx, in, info, handler)
}
