// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: distribuidores/v1/distribuidores.proto

package distribuidoresv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Request struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	State            string                 `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
	AssignedReviewer string                 `protobuf:"bytes,3,opt,name=assigned_reviewer,json=assignedReviewer,proto3" json:"assigned_reviewer,omitempty"`
	BusinessName     string                 `protobuf:"bytes,4,opt,name=business_name,json=businessName,proto3" json:"business_name,omitempty"`
	OwnerName        string                 `protobuf:"bytes,5,opt,name=owner_name,json=ownerName,proto3" json:"owner_name,omitempty"`
	Nit              string                 `protobuf:"bytes,6,opt,name=nit,proto3" json:"nit,omitempty"`
	Dpi              string                 `protobuf:"bytes,7,opt,name=dpi,proto3" json:"dpi,omitempty"`
	Email            string                 `protobuf:"bytes,8,opt,name=email,proto3" json:"email,omitempty"`
	Phone            string                 `protobuf:"bytes,9,opt,name=phone,proto3" json:"phone,omitempty"`
	Address          string                 `protobuf:"bytes,10,opt,name=address,proto3" json:"address,omitempty"`
	Department       string                 `protobuf:"bytes,11,opt,name=department,proto3" json:"department,omitempty"`
	Municipality     string                 `protobuf:"bytes,12,opt,name=municipality,proto3" json:"municipality,omitempty"`
	BankName         string                 `protobuf:"bytes,13,opt,name=bank_name,json=bankName,proto3" json:"bank_name,omitempty"`
	BankAccount      string                 `protobuf:"bytes,14,opt,name=bank_account,json=bankAccount,proto3" json:"bank_account,omitempty"`
	MatchScore       int32                  `protobuf:"varint,15,opt,name=match_score,json=matchScore,proto3" json:"match_score,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Request) Reset() {
	*x = Request{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Request) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Request) ProtoMessage() {}

func (x *Request) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Request.ProtoReflect.Descriptor instead.
func (*Request) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{0}
}

func (x *Request) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Request) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Request) GetAssignedReviewer() string {
	if x != nil {
		return x.AssignedReviewer
	}
	return ""
}

func (x *Request) GetBusinessName() string {
	if x != nil {
		return x.BusinessName
	}
	return ""
}

func (x *Request) GetOwnerName() string {
	if x != nil {
		return x.OwnerName
	}
	return ""
}

func (x *Request) GetNit() string {
	if x != nil {
		return x.Nit
	}
	return ""
}

func (x *Request) GetDpi() string {
	if x != nil {
		return x.Dpi
	}
	return ""
}

func (x *Request) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Request) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Request) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Request) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *Request) GetMunicipality() string {
	if x != nil {
		return x.Municipality
	}
	return ""
}

func (x *Request) GetBankName() string {
	if x != nil {
		return x.BankName
	}
	return ""
}

func (x *Request) GetBankAccount() string {
	if x != nil {
		return x.BankAccount
	}
	return ""
}

func (x *Request) GetMatchScore() int32 {
	if x != nil {
		return x.MatchScore
	}
	return 0
}

func (x *Request) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Request) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type RequestDocument struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RequestId        string                 `protobuf:"bytes,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	DocumentType     string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	ExtractionStatus string                 `protobuf:"bytes,4,opt,name=extraction_status,json=extractionStatus,proto3" json:"extraction_status,omitempty"`
	StructuredFields map[string]string      `protobuf:"bytes,5,rep,name=structured_fields,json=structuredFields,proto3" json:"structured_fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Score            int32                  `protobuf:"varint,6,opt,name=score,proto3" json:"score,omitempty"`
	ReviewStatus     string                 `protobuf:"bytes,7,opt,name=review_status,json=reviewStatus,proto3" json:"review_status,omitempty"`
	ReviewNotes      string                 `protobuf:"bytes,8,opt,name=review_notes,json=reviewNotes,proto3" json:"review_notes,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *RequestDocument) Reset() {
	*x = RequestDocument{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestDocument) ProtoMessage() {}

func (x *RequestDocument) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestDocument.ProtoReflect.Descriptor instead.
func (*RequestDocument) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{1}
}

func (x *RequestDocument) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RequestDocument) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *RequestDocument) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *RequestDocument) GetExtractionStatus() string {
	if x != nil {
		return x.ExtractionStatus
	}
	return ""
}

func (x *RequestDocument) GetStructuredFields() map[string]string {
	if x != nil {
		return x.StructuredFields
	}
	return nil
}

func (x *RequestDocument) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *RequestDocument) GetReviewStatus() string {
	if x != nil {
		return x.ReviewStatus
	}
	return ""
}

func (x *RequestDocument) GetReviewNotes() string {
	if x != nil {
		return x.ReviewNotes
	}
	return ""
}

type RequestBranch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RequestId     string                 `protobuf:"bytes,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Address       string                 `protobuf:"bytes,4,opt,name=address,proto3" json:"address,omitempty"`
	Department    string                 `protobuf:"bytes,5,opt,name=department,proto3" json:"department,omitempty"`
	Municipality  string                 `protobuf:"bytes,6,opt,name=municipality,proto3" json:"municipality,omitempty"`
	Zone          string                 `protobuf:"bytes,7,opt,name=zone,proto3" json:"zone,omitempty"`
	Status        string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	StartDate     string                 `protobuf:"bytes,9,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	ReviewStatus  string                 `protobuf:"bytes,10,opt,name=review_status,json=reviewStatus,proto3" json:"review_status,omitempty"`
	ReviewNotes   string                 `protobuf:"bytes,11,opt,name=review_notes,json=reviewNotes,proto3" json:"review_notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestBranch) Reset() {
	*x = RequestBranch{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestBranch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestBranch) ProtoMessage() {}

func (x *RequestBranch) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestBranch.ProtoReflect.Descriptor instead.
func (*RequestBranch) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{2}
}

func (x *RequestBranch) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RequestBranch) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *RequestBranch) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RequestBranch) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *RequestBranch) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *RequestBranch) GetMunicipality() string {
	if x != nil {
		return x.Municipality
	}
	return ""
}

func (x *RequestBranch) GetZone() string {
	if x != nil {
		return x.Zone
	}
	return ""
}

func (x *RequestBranch) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *RequestBranch) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *RequestBranch) GetReviewStatus() string {
	if x != nil {
		return x.ReviewStatus
	}
	return ""
}

func (x *RequestBranch) GetReviewNotes() string {
	if x != nil {
		return x.ReviewNotes
	}
	return ""
}

type RequestReference struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RequestId     string                 `protobuf:"bytes,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Relationship  string                 `protobuf:"bytes,4,opt,name=relationship,proto3" json:"relationship,omitempty"`
	Phone         string                 `protobuf:"bytes,5,opt,name=phone,proto3" json:"phone,omitempty"`
	ReviewStatus  string                 `protobuf:"bytes,6,opt,name=review_status,json=reviewStatus,proto3" json:"review_status,omitempty"`
	ReviewNotes   string                 `protobuf:"bytes,7,opt,name=review_notes,json=reviewNotes,proto3" json:"review_notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestReference) Reset() {
	*x = RequestReference{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestReference) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestReference) ProtoMessage() {}

func (x *RequestReference) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestReference.ProtoReflect.Descriptor instead.
func (*RequestReference) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{3}
}

func (x *RequestReference) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RequestReference) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *RequestReference) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RequestReference) GetRelationship() string {
	if x != nil {
		return x.Relationship
	}
	return ""
}

func (x *RequestReference) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *RequestReference) GetReviewStatus() string {
	if x != nil {
		return x.ReviewStatus
	}
	return ""
}

func (x *RequestReference) GetReviewNotes() string {
	if x != nil {
		return x.ReviewNotes
	}
	return ""
}

type CreateRequestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BusinessName  string                 `protobuf:"bytes,1,opt,name=business_name,json=businessName,proto3" json:"business_name,omitempty"`
	OwnerName     string                 `protobuf:"bytes,2,opt,name=owner_name,json=ownerName,proto3" json:"owner_name,omitempty"`
	Nit           string                 `protobuf:"bytes,3,opt,name=nit,proto3" json:"nit,omitempty"`
	Dpi           string                 `protobuf:"bytes,4,opt,name=dpi,proto3" json:"dpi,omitempty"`
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,6,opt,name=phone,proto3" json:"phone,omitempty"`
	Address       string                 `protobuf:"bytes,7,opt,name=address,proto3" json:"address,omitempty"`
	Department    string                 `protobuf:"bytes,8,opt,name=department,proto3" json:"department,omitempty"`
	Municipality  string                 `protobuf:"bytes,9,opt,name=municipality,proto3" json:"municipality,omitempty"`
	BankName      string                 `protobuf:"bytes,10,opt,name=bank_name,json=bankName,proto3" json:"bank_name,omitempty"`
	BankAccount   string                 `protobuf:"bytes,11,opt,name=bank_account,json=bankAccount,proto3" json:"bank_account,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRequestRequest) Reset() {
	*x = CreateRequestRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRequestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRequestRequest) ProtoMessage() {}

func (x *CreateRequestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRequestRequest.ProtoReflect.Descriptor instead.
func (*CreateRequestRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{4}
}

func (x *CreateRequestRequest) GetBusinessName() string {
	if x != nil {
		return x.BusinessName
	}
	return ""
}

func (x *CreateRequestRequest) GetOwnerName() string {
	if x != nil {
		return x.OwnerName
	}
	return ""
}

func (x *CreateRequestRequest) GetNit() string {
	if x != nil {
		return x.Nit
	}
	return ""
}

func (x *CreateRequestRequest) GetDpi() string {
	if x != nil {
		return x.Dpi
	}
	return ""
}

func (x *CreateRequestRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateRequestRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *CreateRequestRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *CreateRequestRequest) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *CreateRequestRequest) GetMunicipality() string {
	if x != nil {
		return x.Municipality
	}
	return ""
}

func (x *CreateRequestRequest) GetBankName() string {
	if x != nil {
		return x.BankName
	}
	return ""
}

func (x *CreateRequestRequest) GetBankAccount() string {
	if x != nil {
		return x.BankAccount
	}
	return ""
}

type CreateRequestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Request       *Request               `protobuf:"bytes,1,opt,name=request,proto3" json:"request,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRequestResponse) Reset() {
	*x = CreateRequestResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRequestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRequestResponse) ProtoMessage() {}

func (x *CreateRequestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRequestResponse.ProtoReflect.Descriptor instead.
func (*CreateRequestResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{5}
}

func (x *CreateRequestResponse) GetRequest() *Request {
	if x != nil {
		return x.Request
	}
	return nil
}

type GetRequestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRequestRequest) Reset() {
	*x = GetRequestRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRequestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRequestRequest) ProtoMessage() {}

func (x *GetRequestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRequestRequest.ProtoReflect.Descriptor instead.
func (*GetRequestRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{6}
}

func (x *GetRequestRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type GetRequestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Request       *Request               `protobuf:"bytes,1,opt,name=request,proto3" json:"request,omitempty"`
	Documents     []*RequestDocument     `protobuf:"bytes,2,rep,name=documents,proto3" json:"documents,omitempty"`
	Branches      []*RequestBranch       `protobuf:"bytes,3,rep,name=branches,proto3" json:"branches,omitempty"`
	References    []*RequestReference    `protobuf:"bytes,4,rep,name=references,proto3" json:"references,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRequestResponse) Reset() {
	*x = GetRequestResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRequestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRequestResponse) ProtoMessage() {}

func (x *GetRequestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRequestResponse.ProtoReflect.Descriptor instead.
func (*GetRequestResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{7}
}

func (x *GetRequestResponse) GetRequest() *Request {
	if x != nil {
		return x.Request
	}
	return nil
}

func (x *GetRequestResponse) GetDocuments() []*RequestDocument {
	if x != nil {
		return x.Documents
	}
	return nil
}

func (x *GetRequestResponse) GetBranches() []*RequestBranch {
	if x != nil {
		return x.Branches
	}
	return nil
}

func (x *GetRequestResponse) GetReferences() []*RequestReference {
	if x != nil {
		return x.References
	}
	return nil
}

type ListRequestsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// optional state filter, e.g. "EN_REVISION"
	State         string `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRequestsRequest) Reset() {
	*x = ListRequestsRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRequestsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRequestsRequest) ProtoMessage() {}

func (x *ListRequestsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRequestsRequest.ProtoReflect.Descriptor instead.
func (*ListRequestsRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{8}
}

func (x *ListRequestsRequest) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

type ListRequestsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Requests      []*Request             `protobuf:"bytes,1,rep,name=requests,proto3" json:"requests,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRequestsResponse) Reset() {
	*x = ListRequestsResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRequestsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRequestsResponse) ProtoMessage() {}

func (x *ListRequestsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRequestsResponse.ProtoReflect.Descriptor instead.
func (*ListRequestsResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{9}
}

func (x *ListRequestsResponse) GetRequests() []*Request {
	if x != nil {
		return x.Requests
	}
	return nil
}

type UpdateRequestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Patch         *Request               `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateRequestRequest) Reset() {
	*x = UpdateRequestRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateRequestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateRequestRequest) ProtoMessage() {}

func (x *UpdateRequestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateRequestRequest.ProtoReflect.Descriptor instead.
func (*UpdateRequestRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateRequestRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *UpdateRequestRequest) GetPatch() *Request {
	if x != nil {
		return x.Patch
	}
	return nil
}

type UpdateRequestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Request       *Request               `protobuf:"bytes,1,opt,name=request,proto3" json:"request,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateRequestResponse) Reset() {
	*x = UpdateRequestResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateRequestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateRequestResponse) ProtoMessage() {}

func (x *UpdateRequestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateRequestResponse.ProtoReflect.Descriptor instead.
func (*UpdateRequestResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateRequestResponse) GetRequest() *Request {
	if x != nil {
		return x.Request
	}
	return nil
}

type TransitionRequestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	ToState       string                 `protobuf:"bytes,2,opt,name=to_state,json=toState,proto3" json:"to_state,omitempty"`
	Actor         string                 `protobuf:"bytes,3,opt,name=actor,proto3" json:"actor,omitempty"`
	Comment       string                 `protobuf:"bytes,4,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransitionRequestRequest) Reset() {
	*x = TransitionRequestRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransitionRequestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransitionRequestRequest) ProtoMessage() {}

func (x *TransitionRequestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransitionRequestRequest.ProtoReflect.Descriptor instead.
func (*TransitionRequestRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{12}
}

func (x *TransitionRequestRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *TransitionRequestRequest) GetToState() string {
	if x != nil {
		return x.ToState
	}
	return ""
}

func (x *TransitionRequestRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *TransitionRequestRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type TransitionRequestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Request       *Request               `protobuf:"bytes,1,opt,name=request,proto3" json:"request,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransitionRequestResponse) Reset() {
	*x = TransitionRequestResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransitionRequestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransitionRequestResponse) ProtoMessage() {}

func (x *TransitionRequestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransitionRequestResponse.ProtoReflect.Descriptor instead.
func (*TransitionRequestResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{13}
}

func (x *TransitionRequestResponse) GetRequest() *Request {
	if x != nil {
		return x.Request
	}
	return nil
}

type AddReferenceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Relationship  string                 `protobuf:"bytes,3,opt,name=relationship,proto3" json:"relationship,omitempty"`
	Phone         string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddReferenceRequest) Reset() {
	*x = AddReferenceRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddReferenceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddReferenceRequest) ProtoMessage() {}

func (x *AddReferenceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddReferenceRequest.ProtoReflect.Descriptor instead.
func (*AddReferenceRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{14}
}

func (x *AddReferenceRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *AddReferenceRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddReferenceRequest) GetRelationship() string {
	if x != nil {
		return x.Relationship
	}
	return ""
}

func (x *AddReferenceRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

type AddReferenceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reference     *RequestReference      `protobuf:"bytes,1,opt,name=reference,proto3" json:"reference,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddReferenceResponse) Reset() {
	*x = AddReferenceResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddReferenceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddReferenceResponse) ProtoMessage() {}

func (x *AddReferenceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddReferenceResponse.ProtoReflect.Descriptor instead.
func (*AddReferenceResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{15}
}

func (x *AddReferenceResponse) GetReference() *RequestReference {
	if x != nil {
		return x.Reference
	}
	return nil
}

type SubmitDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	DocumentType  string                 `protobuf:"bytes,2,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{16}
}

func (x *SubmitDocumentRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *SubmitDocumentRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *SubmitDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SubmitDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type SubmitDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *TaskSnapshot          `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{17}
}

func (x *SubmitDocumentResponse) GetTask() *TaskSnapshot {
	if x != nil {
		return x.Task
	}
	return nil
}

type TaskSnapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Score         int32                  `protobuf:"varint,3,opt,name=score,proto3" json:"score,omitempty"`
	Message       string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	Fields        map[string]string      `protobuf:"bytes,5,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskSnapshot) Reset() {
	*x = TaskSnapshot{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskSnapshot) ProtoMessage() {}

func (x *TaskSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskSnapshot.ProtoReflect.Descriptor instead.
func (*TaskSnapshot) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{18}
}

func (x *TaskSnapshot) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *TaskSnapshot) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *TaskSnapshot) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *TaskSnapshot) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *TaskSnapshot) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

type PollTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PollTaskRequest) Reset() {
	*x = PollTaskRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PollTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PollTaskRequest) ProtoMessage() {}

func (x *PollTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PollTaskRequest.ProtoReflect.Descriptor instead.
func (*PollTaskRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{19}
}

func (x *PollTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type PollTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *TaskSnapshot          `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PollTaskResponse) Reset() {
	*x = PollTaskResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PollTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PollTaskResponse) ProtoMessage() {}

func (x *PollTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PollTaskResponse.ProtoReflect.Descriptor instead.
func (*PollTaskResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{20}
}

func (x *PollTaskResponse) GetTask() *TaskSnapshot {
	if x != nil {
		return x.Task
	}
	return nil
}

type AwaitTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AwaitTaskRequest) Reset() {
	*x = AwaitTaskRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AwaitTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AwaitTaskRequest) ProtoMessage() {}

func (x *AwaitTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AwaitTaskRequest.ProtoReflect.Descriptor instead.
func (*AwaitTaskRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{21}
}

func (x *AwaitTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type AwaitTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *TaskSnapshot          `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AwaitTaskResponse) Reset() {
	*x = AwaitTaskResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AwaitTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AwaitTaskResponse) ProtoMessage() {}

func (x *AwaitTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AwaitTaskResponse.ProtoReflect.Descriptor instead.
func (*AwaitTaskResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{22}
}

func (x *AwaitTaskResponse) GetTask() *TaskSnapshot {
	if x != nil {
		return x.Task
	}
	return nil
}

type ReviewFieldRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Section       string                 `protobuf:"bytes,2,opt,name=section,proto3" json:"section,omitempty"`
	Approved      bool                   `protobuf:"varint,3,opt,name=approved,proto3" json:"approved,omitempty"`
	Observation   string                 `protobuf:"bytes,4,opt,name=observation,proto3" json:"observation,omitempty"`
	Actor         string                 `protobuf:"bytes,5,opt,name=actor,proto3" json:"actor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewFieldRequest) Reset() {
	*x = ReviewFieldRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewFieldRequest) ProtoMessage() {}

func (x *ReviewFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewFieldRequest.ProtoReflect.Descriptor instead.
func (*ReviewFieldRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{23}
}

func (x *ReviewFieldRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *ReviewFieldRequest) GetSection() string {
	if x != nil {
		return x.Section
	}
	return ""
}

func (x *ReviewFieldRequest) GetApproved() bool {
	if x != nil {
		return x.Approved
	}
	return false
}

func (x *ReviewFieldRequest) GetObservation() string {
	if x != nil {
		return x.Observation
	}
	return ""
}

func (x *ReviewFieldRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

type ReviewChildRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	ChildId       string                 `protobuf:"bytes,2,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
	Approved      bool                   `protobuf:"varint,3,opt,name=approved,proto3" json:"approved,omitempty"`
	Observation   string                 `protobuf:"bytes,4,opt,name=observation,proto3" json:"observation,omitempty"`
	Actor         string                 `protobuf:"bytes,5,opt,name=actor,proto3" json:"actor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewChildRequest) Reset() {
	*x = ReviewChildRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewChildRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewChildRequest) ProtoMessage() {}

func (x *ReviewChildRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewChildRequest.ProtoReflect.Descriptor instead.
func (*ReviewChildRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{24}
}

func (x *ReviewChildRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *ReviewChildRequest) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

func (x *ReviewChildRequest) GetApproved() bool {
	if x != nil {
		return x.Approved
	}
	return false
}

func (x *ReviewChildRequest) GetObservation() string {
	if x != nil {
		return x.Observation
	}
	return ""
}

func (x *ReviewChildRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

type ReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewResponse) Reset() {
	*x = ReviewResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewResponse) ProtoMessage() {}

func (x *ReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewResponse.ProtoReflect.Descriptor instead.
func (*ReviewResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{25}
}

type Distributor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RequestId     string                 `protobuf:"bytes,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	BusinessName  string                 `protobuf:"bytes,3,opt,name=business_name,json=businessName,proto3" json:"business_name,omitempty"`
	OwnerName     string                 `protobuf:"bytes,4,opt,name=owner_name,json=ownerName,proto3" json:"owner_name,omitempty"`
	Nit           string                 `protobuf:"bytes,5,opt,name=nit,proto3" json:"nit,omitempty"`
	Dpi           string                 `protobuf:"bytes,6,opt,name=dpi,proto3" json:"dpi,omitempty"`
	Email         string                 `protobuf:"bytes,7,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,8,opt,name=phone,proto3" json:"phone,omitempty"`
	Address       string                 `protobuf:"bytes,9,opt,name=address,proto3" json:"address,omitempty"`
	Department    string                 `protobuf:"bytes,10,opt,name=department,proto3" json:"department,omitempty"`
	Municipality  string                 `protobuf:"bytes,11,opt,name=municipality,proto3" json:"municipality,omitempty"`
	BankName      string                 `protobuf:"bytes,12,opt,name=bank_name,json=bankName,proto3" json:"bank_name,omitempty"`
	BankAccount   string                 `protobuf:"bytes,13,opt,name=bank_account,json=bankAccount,proto3" json:"bank_account,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Distributor) Reset() {
	*x = Distributor{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Distributor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Distributor) ProtoMessage() {}

func (x *Distributor) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Distributor.ProtoReflect.Descriptor instead.
func (*Distributor) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{26}
}

func (x *Distributor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Distributor) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *Distributor) GetBusinessName() string {
	if x != nil {
		return x.BusinessName
	}
	return ""
}

func (x *Distributor) GetOwnerName() string {
	if x != nil {
		return x.OwnerName
	}
	return ""
}

func (x *Distributor) GetNit() string {
	if x != nil {
		return x.Nit
	}
	return ""
}

func (x *Distributor) GetDpi() string {
	if x != nil {
		return x.Dpi
	}
	return ""
}

func (x *Distributor) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Distributor) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Distributor) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Distributor) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *Distributor) GetMunicipality() string {
	if x != nil {
		return x.Municipality
	}
	return ""
}

func (x *Distributor) GetBankName() string {
	if x != nil {
		return x.BankName
	}
	return ""
}

func (x *Distributor) GetBankAccount() string {
	if x != nil {
		return x.BankAccount
	}
	return ""
}

func (x *Distributor) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GraduateRequestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Actor         string                 `protobuf:"bytes,2,opt,name=actor,proto3" json:"actor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GraduateRequestRequest) Reset() {
	*x = GraduateRequestRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GraduateRequestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GraduateRequestRequest) ProtoMessage() {}

func (x *GraduateRequestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GraduateRequestRequest.ProtoReflect.Descriptor instead.
func (*GraduateRequestRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{27}
}

func (x *GraduateRequestRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *GraduateRequestRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

type GraduateRequestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Distributor   *Distributor           `protobuf:"bytes,1,opt,name=distributor,proto3" json:"distributor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GraduateRequestResponse) Reset() {
	*x = GraduateRequestResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GraduateRequestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GraduateRequestResponse) ProtoMessage() {}

func (x *GraduateRequestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GraduateRequestResponse.ProtoReflect.Descriptor instead.
func (*GraduateRequestResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{28}
}

func (x *GraduateRequestResponse) GetDistributor() *Distributor {
	if x != nil {
		return x.Distributor
	}
	return nil
}

type ListDistributorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDistributorsRequest) Reset() {
	*x = ListDistributorsRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDistributorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDistributorsRequest) ProtoMessage() {}

func (x *ListDistributorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDistributorsRequest.ProtoReflect.Descriptor instead.
func (*ListDistributorsRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{29}
}

type ListDistributorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Distributors  []*Distributor         `protobuf:"bytes,1,rep,name=distributors,proto3" json:"distributors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDistributorsResponse) Reset() {
	*x = ListDistributorsResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDistributorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDistributorsResponse) ProtoMessage() {}

func (x *ListDistributorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDistributorsResponse.ProtoReflect.Descriptor instead.
func (*ListDistributorsResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{30}
}

func (x *ListDistributorsResponse) GetDistributors() []*Distributor {
	if x != nil {
		return x.Distributors
	}
	return nil
}

type TrackingEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RequestId     string                 `protobuf:"bytes,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	PreviousState string                 `protobuf:"bytes,3,opt,name=previous_state,json=previousState,proto3" json:"previous_state,omitempty"`
	NewState      string                 `protobuf:"bytes,4,opt,name=new_state,json=newState,proto3" json:"new_state,omitempty"`
	Actor         string                 `protobuf:"bytes,5,opt,name=actor,proto3" json:"actor,omitempty"`
	Comment       string                 `protobuf:"bytes,6,opt,name=comment,proto3" json:"comment,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TrackingEntry) Reset() {
	*x = TrackingEntry{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrackingEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrackingEntry) ProtoMessage() {}

func (x *TrackingEntry) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrackingEntry.ProtoReflect.Descriptor instead.
func (*TrackingEntry) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{31}
}

func (x *TrackingEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TrackingEntry) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *TrackingEntry) GetPreviousState() string {
	if x != nil {
		return x.PreviousState
	}
	return ""
}

func (x *TrackingEntry) GetNewState() string {
	if x != nil {
		return x.NewState
	}
	return ""
}

func (x *TrackingEntry) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *TrackingEntry) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

func (x *TrackingEntry) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetTrackingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTrackingRequest) Reset() {
	*x = GetTrackingRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTrackingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTrackingRequest) ProtoMessage() {}

func (x *GetTrackingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTrackingRequest.ProtoReflect.Descriptor instead.
func (*GetTrackingRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{32}
}

func (x *GetTrackingRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type GetTrackingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*TrackingEntry       `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTrackingResponse) Reset() {
	*x = GetTrackingResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTrackingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTrackingResponse) ProtoMessage() {}

func (x *GetTrackingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTrackingResponse.ProtoReflect.Descriptor instead.
func (*GetTrackingResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{33}
}

func (x *GetTrackingResponse) GetEntries() []*TrackingEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type ExportTrackingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTrackingRequest) Reset() {
	*x = ExportTrackingRequest{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTrackingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTrackingRequest) ProtoMessage() {}

func (x *ExportTrackingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTrackingRequest.ProtoReflect.Descriptor instead.
func (*ExportTrackingRequest) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{34}
}

func (x *ExportTrackingRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type ExportTrackingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTrackingResponse) Reset() {
	*x = ExportTrackingResponse{}
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTrackingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTrackingResponse) ProtoMessage() {}

func (x *ExportTrackingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_distribuidores_v1_distribuidores_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTrackingResponse.ProtoReflect.Descriptor instead.
func (*ExportTrackingResponse) Descriptor() ([]byte, []int) {
	return file_distribuidores_v1_distribuidores_proto_rawDescGZIP(), []int{35}
}

func (x *ExportTrackingResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_distribuidores_v1_distribuidores_proto protoreflect.FileDescriptor

const file_distribuidores_v1_distribuidores_proto_rawDesc = "" +
	"\n" +
	"&distribuidores/v1/distribuidores.proto\x12\x11distribuidores.v1\"\xed\x03\n" +
	"\aRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05state\x18\x02 \x01(\tR\x05state\x12+\n" +
	"\x11assigned_reviewer\x18\x03 \x01(\tR\x10assignedReviewer\x12#\n" +
	"\rbusiness_name\x18\x04 \x01(\tR\fbusinessName\x12\x1d\n" +
	"\n" +
	"owner_name\x18\x05 \x01(\tR\townerName\x12\x10\n" +
	"\x03nit\x18\x06 \x01(\tR\x03nit\x12\x10\n" +
	"\x03dpi\x18\a \x01(\tR\x03dpi\x12\x14\n" +
	"\x05email\x18\b \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\t \x01(\tR\x05phone\x12\x18\n" +
	"\aaddress\x18\n" +
	" \x01(\tR\aaddress\x12\x1e\n" +
	"\n" +
	"department\x18\v \x01(\tR\n" +
	"department\x12\"\n" +
	"\fmunicipality\x18\f \x01(\tR\fmunicipality\x12\x1b\n" +
	"\tbank_name\x18\r \x01(\tR\bbankName\x12!\n" +
	"\fbank_account\x18\x0e \x01(\tR\vbankAccount\x12\x1f\n" +
	"\vmatch_score\x18\x0f \x01(\x05R\n" +
	"matchScore\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\"\x9c\x03\n" +
	"\x0fRequestDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"request_id\x18\x02 \x01(\tR\trequestId\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12+\n" +
	"\x11extraction_status\x18\x04 \x01(\tR\x10extractionStatus\x12e\n" +
	"\x11structured_fields\x18\x05 \x03(\v28.distribuidores.v1.RequestDocument.StructuredFieldsEntryR\x10structuredFields\x12\x14\n" +
	"\x05score\x18\x06 \x01(\x05R\x05score\x12#\n" +
	"\rreview_status\x18\a \x01(\tR\freviewStatus\x12!\n" +
	"\freview_notes\x18\b \x01(\tR\vreviewNotes\x1aC\n" +
	"\x15StructuredFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xc3\x02\n" +
	"\rRequestBranch\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"request_id\x18\x02 \x01(\tR\trequestId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x18\n" +
	"\aaddress\x18\x04 \x01(\tR\aaddress\x12\x1e\n" +
	"\n" +
	"department\x18\x05 \x01(\tR\n" +
	"department\x12\"\n" +
	"\fmunicipality\x18\x06 \x01(\tR\fmunicipality\x12\x12\n" +
	"\x04zone\x18\a \x01(\tR\x04zone\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"start_date\x18\t \x01(\tR\tstartDate\x12#\n" +
	"\rreview_status\x18\n" +
	" \x01(\tR\freviewStatus\x12!\n" +
	"\freview_notes\x18\v \x01(\tR\vreviewNotes\"\xd7\x01\n" +
	"\x10RequestReference\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"request_id\x18\x02 \x01(\tR\trequestId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\"\n" +
	"\frelationship\x18\x04 \x01(\tR\frelationship\x12\x14\n" +
	"\x05phone\x18\x05 \x01(\tR\x05phone\x12#\n" +
	"\rreview_status\x18\x06 \x01(\tR\freviewStatus\x12!\n" +
	"\freview_notes\x18\a \x01(\tR\vreviewNotes\"\xc8\x02\n" +
	"\x14CreateRequestRequest\x12#\n" +
	"\rbusiness_name\x18\x01 \x01(\tR\fbusinessName\x12\x1d\n" +
	"\n" +
	"owner_name\x18\x02 \x01(\tR\townerName\x12\x10\n" +
	"\x03nit\x18\x03 \x01(\tR\x03nit\x12\x10\n" +
	"\x03dpi\x18\x04 \x01(\tR\x03dpi\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x06 \x01(\tR\x05phone\x12\x18\n" +
	"\aaddress\x18\a \x01(\tR\aaddress\x12\x1e\n" +
	"\n" +
	"department\x18\b \x01(\tR\n" +
	"department\x12\"\n" +
	"\fmunicipality\x18\t \x01(\tR\fmunicipality\x12\x1b\n" +
	"\tbank_name\x18\n" +
	" \x01(\tR\bbankName\x12!\n" +
	"\fbank_account\x18\v \x01(\tR\vbankAccount\"M\n" +
	"\x15CreateRequestResponse\x124\n" +
	"\arequest\x18\x01 \x01(\v2\x1a.distribuidores.v1.RequestR\arequest\"2\n" +
	"\x11GetRequestRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\"\x8f\x02\n" +
	"\x12GetRequestResponse\x124\n" +
	"\arequest\x18\x01 \x01(\v2\x1a.distribuidores.v1.RequestR\arequest\x12@\n" +
	"\tdocuments\x18\x02 \x03(\v2\".distribuidores.v1.RequestDocumentR\tdocuments\x12<\n" +
	"\bbranches\x18\x03 \x03(\v2 .distribuidores.v1.RequestBranchR\bbranches\x12C\n" +
	"\n" +
	"references\x18\x04 \x03(\v2#.distribuidores.v1.RequestReferenceR\n" +
	"references\"+\n" +
	"\x13ListRequestsRequest\x12\x14\n" +
	"\x05state\x18\x01 \x01(\tR\x05state\"N\n" +
	"\x14ListRequestsResponse\x126\n" +
	"\brequests\x18\x01 \x03(\v2\x1a.distribuidores.v1.RequestR\brequests\"g\n" +
	"\x14UpdateRequestRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x120\n" +
	"\x05patch\x18\x02 \x01(\v2\x1a.distribuidores.v1.RequestR\x05patch\"M\n" +
	"\x15UpdateRequestResponse\x124\n" +
	"\arequest\x18\x01 \x01(\v2\x1a.distribuidores.v1.RequestR\arequest\"\x84\x01\n" +
	"\x18TransitionRequestRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x19\n" +
	"\bto_state\x18\x02 \x01(\tR\atoState\x12\x14\n" +
	"\x05actor\x18\x03 \x01(\tR\x05actor\x12\x18\n" +
	"\acomment\x18\x04 \x01(\tR\acomment\"Q\n" +
	"\x19TransitionRequestResponse\x124\n" +
	"\arequest\x18\x01 \x01(\v2\x1a.distribuidores.v1.RequestR\arequest\"\x82\x01\n" +
	"\x13AddReferenceRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\"\n" +
	"\frelationship\x18\x03 \x01(\tR\frelationship\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\"Y\n" +
	"\x14AddReferenceResponse\x12A\n" +
	"\treference\x18\x01 \x01(\v2#.distribuidores.v1.RequestReferenceR\treference\"\x91\x01\n" +
	"\x15SubmitDocumentRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12#\n" +
	"\rdocument_type\x18\x02 \x01(\tR\fdocumentType\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\"M\n" +
	"\x16SubmitDocumentResponse\x123\n" +
	"\x04task\x18\x01 \x01(\v2\x1f.distribuidores.v1.TaskSnapshotR\x04task\"\xef\x01\n" +
	"\fTaskSnapshot\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05score\x18\x03 \x01(\x05R\x05score\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\x12C\n" +
	"\x06fields\x18\x05 \x03(\v2+.distribuidores.v1.TaskSnapshot.FieldsEntryR\x06fields\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"*\n" +
	"\x0fPollTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"G\n" +
	"\x10PollTaskResponse\x123\n" +
	"\x04task\x18\x01 \x01(\v2\x1f.distribuidores.v1.TaskSnapshotR\x04task\"+\n" +
	"\x10AwaitTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"H\n" +
	"\x11AwaitTaskResponse\x123\n" +
	"\x04task\x18\x01 \x01(\v2\x1f.distribuidores.v1.TaskSnapshotR\x04task\"\xa1\x01\n" +
	"\x12ReviewFieldRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x18\n" +
	"\asection\x18\x02 \x01(\tR\asection\x12\x1a\n" +
	"\bapproved\x18\x03 \x01(\bR\bapproved\x12 \n" +
	"\vobservation\x18\x04 \x01(\tR\vobservation\x12\x14\n" +
	"\x05actor\x18\x05 \x01(\tR\x05actor\"\xa2\x01\n" +
	"\x12ReviewChildRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x19\n" +
	"\bchild_id\x18\x02 \x01(\tR\achildId\x12\x1a\n" +
	"\bapproved\x18\x03 \x01(\bR\bapproved\x12 \n" +
	"\vobservation\x18\x04 \x01(\tR\vobservation\x12\x14\n" +
	"\x05actor\x18\x05 \x01(\tR\x05actor\"\x10\n" +
	"\x0eReviewResponse\"\x8d\x03\n" +
	"\vDistributor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"request_id\x18\x02 \x01(\tR\trequestId\x12#\n" +
	"\rbusiness_name\x18\x03 \x01(\tR\fbusinessName\x12\x1d\n" +
	"\n" +
	"owner_name\x18\x04 \x01(\tR\townerName\x12\x10\n" +
	"\x03nit\x18\x05 \x01(\tR\x03nit\x12\x10\n" +
	"\x03dpi\x18\x06 \x01(\tR\x03dpi\x12\x14\n" +
	"\x05email\x18\a \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\b \x01(\tR\x05phone\x12\x18\n" +
	"\aaddress\x18\t \x01(\tR\aaddress\x12\x1e\n" +
	"\n" +
	"department\x18\n" +
	" \x01(\tR\n" +
	"department\x12\"\n" +
	"\fmunicipality\x18\v \x01(\tR\fmunicipality\x12\x1b\n" +
	"\tbank_name\x18\f \x01(\tR\bbankName\x12!\n" +
	"\fbank_account\x18\r \x01(\tR\vbankAccount\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\tR\tcreatedAt\"M\n" +
	"\x16GraduateRequestRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x14\n" +
	"\x05actor\x18\x02 \x01(\tR\x05actor\"[\n" +
	"\x17GraduateRequestResponse\x12@\n" +
	"\vdistributor\x18\x01 \x01(\v2\x1e.distribuidores.v1.DistributorR\vdistributor\"\x19\n" +
	"\x17ListDistributorsRequest\"^\n" +
	"\x18ListDistributorsResponse\x12B\n" +
	"\fdistributors\x18\x01 \x03(\v2\x1e.distribuidores.v1.DistributorR\fdistributors\"\xd1\x01\n" +
	"\rTrackingEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"request_id\x18\x02 \x01(\tR\trequestId\x12%\n" +
	"\x0eprevious_state\x18\x03 \x01(\tR\rpreviousState\x12\x1b\n" +
	"\tnew_state\x18\x04 \x01(\tR\bnewState\x12\x14\n" +
	"\x05actor\x18\x05 \x01(\tR\x05actor\x12\x18\n" +
	"\acomment\x18\x06 \x01(\tR\acomment\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"3\n" +
	"\x12GetTrackingRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\"Q\n" +
	"\x13GetTrackingResponse\x12:\n" +
	"\aentries\x18\x01 \x03(\v2 .distribuidores.v1.TrackingEntryR\aentries\"6\n" +
	"\x15ExportTrackingRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\",\n" +
	"\x16ExportTrackingResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xe6\x04\n" +
	"\x0fRequestsService\x12b\n" +
	"\rCreateRequest\x12'.distribuidores.v1.CreateRequestRequest\x1a(.distribuidores.v1.CreateRequestResponse\x12Y\n" +
	"\n" +
	"GetRequest\x12$.distribuidores.v1.GetRequestRequest\x1a%.distribuidores.v1.GetRequestResponse\x12_\n" +
	"\fListRequests\x12&.distribuidores.v1.ListRequestsRequest\x1a'.distribuidores.v1.ListRequestsResponse\x12b\n" +
	"\rUpdateRequest\x12'.distribuidores.v1.UpdateRequestRequest\x1a(.distribuidores.v1.UpdateRequestResponse\x12n\n" +
	"\x11TransitionRequest\x12+.distribuidores.v1.TransitionRequestRequest\x1a,.distribuidores.v1.TransitionRequestResponse\x12_\n" +
	"\fAddReference\x12&.distribuidores.v1.AddReferenceRequest\x1a'.distribuidores.v1.AddReferenceResponse2\xa6\x02\n" +
	"\x10DocumentsService\x12e\n" +
	"\x0eSubmitDocument\x12(.distribuidores.v1.SubmitDocumentRequest\x1a).distribuidores.v1.SubmitDocumentResponse\x12S\n" +
	"\bPollTask\x12\".distribuidores.v1.PollTaskRequest\x1a#.distribuidores.v1.PollTaskResponse\x12V\n" +
	"\tAwaitTask\x12#.distribuidores.v1.AwaitTaskRequest\x1a$.distribuidores.v1.AwaitTaskResponse2\xfb\x02\n" +
	"\rReviewService\x12W\n" +
	"\vReviewField\x12%.distribuidores.v1.ReviewFieldRequest\x1a!.distribuidores.v1.ReviewResponse\x12Z\n" +
	"\x0eReviewDocument\x12%.distribuidores.v1.ReviewChildRequest\x1a!.distribuidores.v1.ReviewResponse\x12X\n" +
	"\fReviewBranch\x12%.distribuidores.v1.ReviewChildRequest\x1a!.distribuidores.v1.ReviewResponse\x12[\n" +
	"\x0fReviewReference\x12%.distribuidores.v1.ReviewChildRequest\x1a!.distribuidores.v1.ReviewResponse2\xec\x01\n" +
	"\x13DistributorsService\x12h\n" +
	"\x0fGraduateRequest\x12).distribuidores.v1.GraduateRequestRequest\x1a*.distribuidores.v1.GraduateRequestResponse\x12k\n" +
	"\x10ListDistributors\x12*.distribuidores.v1.ListDistributorsRequest\x1a+.distribuidores.v1.ListDistributorsResponse2\xd6\x01\n" +
	"\x0fTrackingService\x12\\\n" +
	"\vGetTracking\x12%.distribuidores.v1.GetTrackingRequest\x1a&.distribuidores.v1.GetTrackingResponse\x12e\n" +
	"\x0eExportTracking\x12(.distribuidores.v1.ExportTrackingRequest\x1a).distribuidores.v1.ExportTrackingResponseBSZQgithub.com/jmonzon-gt/distribuidores/gen/proto/distribuidores/v1;distribuidoresv1b\x06proto3"

var (
	file_distribuidores_v1_distribuidores_proto_rawDescOnce sync.Once
	file_distribuidores_v1_distribuidores_proto_rawDescData []byte
)

func file_distribuidores_v1_distribuidores_proto_rawDescGZIP() []byte {
	file_distribuidores_v1_distribuidores_proto_rawDescOnce.Do(func() {
		file_distribuidores_v1_distribuidores_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_distribuidores_v1_distribuidores_proto_rawDesc), len(file_distribuidores_v1_distribuidores_proto_rawDesc)))
	})
	return file_distribuidores_v1_distribuidores_proto_rawDescData
}

var file_distribuidores_v1_distribuidores_proto_msgTypes = make([]protoimpl.MessageInfo, 38)
var file_distribuidores_v1_distribuidores_proto_goTypes = []any{
	(*Request)(nil),                   // 0: distribuidores.v1.Request
	(*RequestDocument)(nil),           // 1: distribuidores.v1.RequestDocument
	(*RequestBranch)(nil),             // 2: distribuidores.v1.RequestBranch
	(*RequestReference)(nil),          // 3: distribuidores.v1.RequestReference
	(*CreateRequestRequest)(nil),      // 4: distribuidores.v1.CreateRequestRequest
	(*CreateRequestResponse)(nil),     // 5: distribuidores.v1.CreateRequestResponse
	(*GetRequestRequest)(nil),         // 6: distribuidores.v1.GetRequestRequest
	(*GetRequestResponse)(nil),        // 7: distribuidores.v1.GetRequestResponse
	(*ListRequestsRequest)(nil),       // 8: distribuidores.v1.ListRequestsRequest
	(*ListRequestsResponse)(nil),      // 9: distribuidores.v1.ListRequestsResponse
	(*UpdateRequestRequest)(nil),      // 10: distribuidores.v1.UpdateRequestRequest
	(*UpdateRequestResponse)(nil),     // 11: distribuidores.v1.UpdateRequestResponse
	(*TransitionRequestRequest)(nil),  // 12: distribuidores.v1.TransitionRequestRequest
	(*TransitionRequestResponse)(nil), // 13: distribuidores.v1.TransitionRequestResponse
	(*AddReferenceRequest)(nil),       // 14: distribuidores.v1.AddReferenceRequest
	(*AddReferenceResponse)(nil),      // 15: distribuidores.v1.AddReferenceResponse
	(*SubmitDocumentRequest)(nil),     // 16: distribuidores.v1.SubmitDocumentRequest
	(*SubmitDocumentResponse)(nil),    // 17: distribuidores.v1.SubmitDocumentResponse
	(*TaskSnapshot)(nil),              // 18: distribuidores.v1.TaskSnapshot
	(*PollTaskRequest)(nil),           // 19: distribuidores.v1.PollTaskRequest
	(*PollTaskResponse)(nil),          // 20: distribuidores.v1.PollTaskResponse
	(*AwaitTaskRequest)(nil),          // 21: distribuidores.v1.AwaitTaskRequest
	(*AwaitTaskResponse)(nil),         // 22: distribuidores.v1.AwaitTaskResponse
	(*ReviewFieldRequest)(nil),        // 23: distribuidores.v1.ReviewFieldRequest
	(*ReviewChildRequest)(nil),        // 24: distribuidores.v1.ReviewChildRequest
	(*ReviewResponse)(nil),            // 25: distribuidores.v1.ReviewResponse
	(*Distributor)(nil),               // 26: distribuidores.v1.Distributor
	(*GraduateRequestRequest)(nil),    // 27: distribuidores.v1.GraduateRequestRequest
	(*GraduateRequestResponse)(nil),   // 28: distribuidores.v1.GraduateRequestResponse
	(*ListDistributorsRequest)(nil),   // 29: distribuidores.v1.ListDistributorsRequest
	(*ListDistributorsResponse)(nil),  // 30: distribuidores.v1.ListDistributorsResponse
	(*TrackingEntry)(nil),             // 31: distribuidores.v1.TrackingEntry
	(*GetTrackingRequest)(nil),        // 32: distribuidores.v1.GetTrackingRequest
	(*GetTrackingResponse)(nil),       // 33: distribuidores.v1.GetTrackingResponse
	(*ExportTrackingRequest)(nil),     // 34: distribuidores.v1.ExportTrackingRequest
	(*ExportTrackingResponse)(nil),    // 35: distribuidores.v1.ExportTrackingResponse
	nil,                               // 36: distribuidores.v1.RequestDocument.StructuredFieldsEntry
	nil,                               // 37: distribuidores.v1.TaskSnapshot.FieldsEntry
}
var file_distribuidores_v1_distribuidores_proto_depIdxs = []int32{
	36, // 0: distribuidores.v1.RequestDocument.structured_fields:type_name -> distribuidores.v1.RequestDocument.StructuredFieldsEntry
	0,  // 1: distribuidores.v1.CreateRequestResponse.request:type_name -> distribuidores.v1.Request
	0,  // 2: distribuidores.v1.GetRequestResponse.request:type_name -> distribuidores.v1.Request
	1,  // 3: distribuidores.v1.GetRequestResponse.documents:type_name -> distribuidores.v1.RequestDocument
	2,  // 4: distribuidores.v1.GetRequestResponse.branches:type_name -> distribuidores.v1.RequestBranch
	3,  // 5: distribuidores.v1.GetRequestResponse.references:type_name -> distribuidores.v1.RequestReference
	0,  // 6: distribuidores.v1.ListRequestsResponse.requests:type_name -> distribuidores.v1.Request
	0,  // 7: distribuidores.v1.UpdateRequestRequest.patch:type_name -> distribuidores.v1.Request
	0,  // 8: distribuidores.v1.UpdateRequestResponse.request:type_name -> distribuidores.v1.Request
	0,  // 9: distribuidores.v1.TransitionRequestResponse.request:type_name -> distribuidores.v1.Request
	3,  // 10: distribuidores.v1.AddReferenceResponse.reference:type_name -> distribuidores.v1.RequestReference
	18, // 11: distribuidores.v1.SubmitDocumentResponse.task:type_name -> distribuidores.v1.TaskSnapshot
	37, // 12: distribuidores.v1.TaskSnapshot.fields:type_name -> distribuidores.v1.TaskSnapshot.FieldsEntry
	18, // 13: distribuidores.v1.PollTaskResponse.task:type_name -> distribuidores.v1.TaskSnapshot
	18, // 14: distribuidores.v1.AwaitTaskResponse.task:type_name -> distribuidores.v1.TaskSnapshot
	26, // 15: distribuidores.v1.GraduateRequestResponse.distributor:type_name -> distribuidores.v1.Distributor
	26, // 16: distribuidores.v1.ListDistributorsResponse.distributors:type_name -> distribuidores.v1.Distributor
	31, // 17: distribuidores.v1.GetTrackingResponse.entries:type_name -> distribuidores.v1.TrackingEntry
	4,  // 18: distribuidores.v1.RequestsService.CreateRequest:input_type -> distribuidores.v1.CreateRequestRequest
	6,  // 19: distribuidores.v1.RequestsService.GetRequest:input_type -> distribuidores.v1.GetRequestRequest
	8,  // 20: distribuidores.v1.RequestsService.ListRequests:input_type -> distribuidores.v1.ListRequestsRequest
	10, // 21: distribuidores.v1.RequestsService.UpdateRequest:input_type -> distribuidores.v1.UpdateRequestRequest
	12, // 22: distribuidores.v1.RequestsService.TransitionRequest:input_type -> distribuidores.v1.TransitionRequestRequest
	14, // 23: distribuidores.v1.RequestsService.AddReference:input_type -> distribuidores.v1.AddReferenceRequest
	16, // 24: distribuidores.v1.DocumentsService.SubmitDocument:input_type -> distribuidores.v1.SubmitDocumentRequest
	19, // 25: distribuidores.v1.DocumentsService.PollTask:input_type -> distribuidores.v1.PollTaskRequest
	21, // 26: distribuidores.v1.DocumentsService.AwaitTask:input_type -> distribuidores.v1.AwaitTaskRequest
	23, // 27: distribuidores.v1.ReviewService.ReviewField:input_type -> distribuidores.v1.ReviewFieldRequest
	24, // 28: distribuidores.v1.ReviewService.ReviewDocument:input_type -> distribuidores.v1.ReviewChildRequest
	24, // 29: distribuidores.v1.ReviewService.ReviewBranch:input_type -> distribuidores.v1.ReviewChildRequest
	24, // 30: distribuidores.v1.ReviewService.ReviewReference:input_type -> distribuidores.v1.ReviewChildRequest
	27, // 31: distribuidores.v1.DistributorsService.GraduateRequest:input_type -> distribuidores.v1.GraduateRequestRequest
	29, // 32: distribuidores.v1.DistributorsService.ListDistributors:input_type -> distribuidores.v1.ListDistributorsRequest
	32, // 33: distribuidores.v1.TrackingService.GetTracking:input_type -> distribuidores.v1.GetTrackingRequest
	34, // 34: distribuidores.v1.TrackingService.ExportTracking:input_type -> distribuidores.v1.ExportTrackingRequest
	5,  // 35: distribuidores.v1.RequestsService.CreateRequest:output_type -> distribuidores.v1.CreateRequestResponse
	7,  // 36: distribuidores.v1.RequestsService.GetRequest:output_type -> distribuidores.v1.GetRequestResponse
	9,  // 37: distribuidores.v1.RequestsService.ListRequests:output_type -> distribuidores.v1.ListRequestsResponse
	11, // 38: distribuidores.v1.RequestsService.UpdateRequest:output_type -> distribuidores.v1.UpdateRequestResponse
	13, // 39: distribuidores.v1.RequestsService.TransitionRequest:output_type -> distribuidores.v1.TransitionRequestResponse
	15, // 40: distribuidores.v1.RequestsService.AddReference:output_type -> distribuidores.v1.AddReferenceResponse
	17, // 41: distribuidores.v1.DocumentsService.SubmitDocument:output_type -> distribuidores.v1.SubmitDocumentResponse
	20, // 42: distribuidores.v1.DocumentsService.PollTask:output_type -> distribuidores.v1.PollTaskResponse
	22, // 43: distribuidores.v1.DocumentsService.AwaitTask:output_type -> distribuidores.v1.AwaitTaskResponse
	25, // 44: distribuidores.v1.ReviewService.ReviewField:output_type -> distribuidores.v1.ReviewResponse
	25, // 45: distribuidores.v1.ReviewService.ReviewDocument:output_type -> distribuidores.v1.ReviewResponse
	25, // 46: distribuidores.v1.ReviewService.ReviewBranch:output_type -> distribuidores.v1.ReviewResponse
	25, // 47: distribuidores.v1.ReviewService.ReviewReference:output_type -> distribuidores.v1.ReviewResponse
	28, // 48: distribuidores.v1.DistributorsService.GraduateRequest:output_type -> distribuidores.v1.GraduateRequestResponse
	30, // 49: distribuidores.v1.DistributorsService.ListDistributors:output_type -> distribuidores.v1.ListDistributorsResponse
	33, // 50: distribuidores.v1.TrackingService.GetTracking:output_type -> distribuidores.v1.GetTrackingResponse
	35, // 51: distribuidores.v1.TrackingService.ExportTracking:output_type -> distribuidores.v1.ExportTrackingResponse
	35, // [35:52] is the sub-list for method output_type
	18, // [18:35] is the sub-list for method input_type
	18, // [18:18] is the sub-list for extension type_name
	18, // [18:18] is the sub-list for extension extendee
	0,  // [0:18] is the sub-list for field type_name
}

func init() { file_distribuidores_v1_distribuidores_proto_init() }
func file_distribuidores_v1_distribuidores_proto_init() {
	if File_distribuidores_v1_distribuidores_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_distribuidores_v1_distribuidores_proto_rawDesc), len(file_distribuidores_v1_distribuidores_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   38,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_distribuidores_v1_distribuidores_proto_goTypes,
		DependencyIndexes: file_distribuidores_v1_distribuidores_proto_depIdxs,
		MessageInfos:      file_distribuidores_v1_distribuidores_proto_msgTypes,
	}.Build()
	File_distribuidores_v1_distribuidores_proto = out.File
	file_distribuidores_v1_distribuidores_proto_goTypes = nil
	file_distribuidores_v1_distribuidores_proto_depIdxs = nil
}
