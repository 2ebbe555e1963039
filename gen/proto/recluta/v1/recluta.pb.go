// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: recluta/v1/recluta.proto

package reclutav1

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

type CVFile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CVFile) Reset() {
	*x = CVFile{}
	mi := &file_recluta_v1_recluta_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CVFile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CVFile) ProtoMessage() {}

func (x *CVFile) ProtoReflect() protoreflect.Message {
	mi := &file_recluta_v1_recluta_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CVFile.ProtoReflect.Descriptor instead.
func (*CVFile) Descriptor() ([]byte, []int) {
	return file_recluta_v1_recluta_proto_rawDescGZIP(), []int{0}
}

func (x *CVFile) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *CVFile) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type ProcessCVBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OfferId       int32                  `protobuf:"varint,1,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	Files         []*CVFile              `protobuf:"bytes,2,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessCVBatchRequest) Reset() {
	*x = ProcessCVBatchRequest{}
	mi := &file_recluta_v1_recluta_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessCVBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessCVBatchRequest) ProtoMessage() {}

func (x *ProcessCVBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recluta_v1_recluta_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessCVBatchRequest.ProtoReflect.Descriptor instead.
func (*ProcessCVBatchRequest) Descriptor() ([]byte, []int) {
	return file_recluta_v1_recluta_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessCVBatchRequest) GetOfferId() int32 {
	if x != nil {
		return x.OfferId
	}
	return 0
}

func (x *ProcessCVBatchRequest) GetFiles() []*CVFile {
	if x != nil {
		return x.Files
	}
	return nil
}

type ApplicationOutcome struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CvRecordId    int32                  `protobuf:"varint,1,opt,name=cv_record_id,json=cvRecordId,proto3" json:"cv_record_id,omitempty"`
	ApplicationId int32                  `protobuf:"varint,2,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplicationOutcome) Reset() {
	*x = ApplicationOutcome{}
	mi := &file_recluta_v1_recluta_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplicationOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplicationOutcome) ProtoMessage() {}

func (x *ApplicationOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_recluta_v1_recluta_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplicationOutcome.ProtoReflect.Descriptor instead.
func (*ApplicationOutcome) Descriptor() ([]byte, []int) {
	return file_recluta_v1_recluta_proto_rawDescGZIP(), []int{2}
}

func (x *ApplicationOutcome) GetCvRecordId() int32 {
	if x != nil {
		return x.CvRecordId
	}
	return 0
}

func (x *ApplicationOutcome) GetApplicationId() int32 {
	if x != nil {
		return x.ApplicationId
	}
	return 0
}

type ProcessCVBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Outcomes      []*ApplicationOutcome  `protobuf:"bytes,1,rep,name=outcomes,proto3" json:"outcomes,omitempty"`
	Scored        int32                  `protobuf:"varint,2,opt,name=scored,proto3" json:"scored,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessCVBatchResponse) Reset() {
	*x = ProcessCVBatchResponse{}
	mi := &file_recluta_v1_recluta_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessCVBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessCVBatchResponse) ProtoMessage() {}

func (x *ProcessCVBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recluta_v1_recluta_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessCVBatchResponse.ProtoReflect.Descriptor instead.
func (*ProcessCVBatchResponse) Descriptor() ([]byte, []int) {
	return file_recluta_v1_recluta_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessCVBatchResponse) GetOutcomes() []*ApplicationOutcome {
	if x != nil {
		return x.Outcomes
	}
	return nil
}

func (x *ProcessCVBatchResponse) GetScored() int32 {
	if x != nil {
		return x.Scored
	}
	return 0
}

func (x *ProcessCVBatchResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type ListApplicationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OfferId       int32                  `protobuf:"varint,1,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsRequest) Reset() {
	*x = ListApplicationsRequest{}
	mi := &file_recluta_v1_recluta_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsRequest) ProtoMessage() {}

func (x *ListApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recluta_v1_recluta_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsRequest.ProtoReflect.Descriptor instead.
func (*ListApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_recluta_v1_recluta_proto_rawDescGZIP(), []int{4}
}

func (x *ListApplicationsRequest) GetOfferId() int32 {
	if x != nil {
		return x.OfferId
	}
	return 0
}

type Application struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	CvRecordId       int32                  `protobuf:"varint,2,opt,name=cv_record_id,json=cvRecordId,proto3" json:"cv_record_id,omitempty"`
	OfferId          int32                  `protobuf:"varint,3,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	Status           string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Score            float64                `protobuf:"fixed64,5,opt,name=score,proto3" json:"score,omitempty"`
	CandidateName    string                 `protobuf:"bytes,6,opt,name=candidate_name,json=candidateName,proto3" json:"candidate_name,omitempty"`
	CandidateDni     string                 `protobuf:"bytes,7,opt,name=candidate_dni,json=candidateDni,proto3" json:"candidate_dni,omitempty"`
	CandidateDniType string                 `protobuf:"bytes,8,opt,name=candidate_dni_type,json=candidateDniType,proto3" json:"candidate_dni_type,omitempty"`
	CandidateCity    string                 `protobuf:"bytes,9,opt,name=candidate_city,json=candidateCity,proto3" json:"candidate_city,omitempty"`
	CandidatePhone   string                 `protobuf:"bytes,10,opt,name=candidate_phone,json=candidatePhone,proto3" json:"candidate_phone,omitempty"`
	CandidateMail    string                 `protobuf:"bytes,11,opt,name=candidate_mail,json=candidateMail,proto3" json:"candidate_mail,omitempty"`
	BackgroundCheck  string                 `protobuf:"bytes,12,opt,name=background_check,json=backgroundCheck,proto3" json:"background_check,omitempty"`
	BackgroundDate   string                 `protobuf:"bytes,13,opt,name=background_date,json=backgroundDate,proto3" json:"background_date,omitempty"`
	CvUrl            string                 `protobuf:"bytes,14,opt,name=cv_url,json=cvUrl,proto3" json:"cv_url,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Application) Reset() {
	*x = Application{}
	mi := &file_recluta_v1_recluta_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Application) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Application) ProtoMessage() {}

func (x *Application) ProtoReflect() protoreflect.Message {
	mi := &file_recluta_v1_recluta_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Application.ProtoReflect.Descriptor instead.
func (*Application) Descriptor() ([]byte, []int) {
	return file_recluta_v1_recluta_proto_rawDescGZIP(), []int{5}
}

func (x *Application) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Application) GetCvRecordId() int32 {
	if x != nil {
		return x.CvRecordId
	}
	return 0
}

func (x *Application) GetOfferId() int32 {
	if x != nil {
		return x.OfferId
	}
	return 0
}

func (x *Application) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Application) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *Application) GetCandidateName() string {
	if x != nil {
		return x.CandidateName
	}
	return ""
}

func (x *Application) GetCandidateDni() string {
	if x != nil {
		return x.CandidateDni
	}
	return ""
}

func (x *Application) GetCandidateDniType() string {
	if x != nil {
		return x.CandidateDniType
	}
	return ""
}

func (x *Application) GetCandidateCity() string {
	if x != nil {
		return x.CandidateCity
	}
	return ""
}

func (x *Application) GetCandidatePhone() string {
	if x != nil {
		return x.CandidatePhone
	}
	return ""
}

func (x *Application) GetCandidateMail() string {
	if x != nil {
		return x.CandidateMail
	}
	return ""
}

func (x *Application) GetBackgroundCheck() string {
	if x != nil {
		return x.BackgroundCheck
	}
	return ""
}

func (x *Application) GetBackgroundDate() string {
	if x != nil {
		return x.BackgroundDate
	}
	return ""
}

func (x *Application) GetCvUrl() string {
	if x != nil {
		return x.CvUrl
	}
	return ""
}

func (x *Application) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applications  []*Application         `protobuf:"bytes,1,rep,name=applications,proto3" json:"applications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsResponse) Reset() {
	*x = ListApplicationsResponse{}
	mi := &file_recluta_v1_recluta_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsResponse) ProtoMessage() {}

func (x *ListApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recluta_v1_recluta_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsResponse.ProtoReflect.Descriptor instead.
func (*ListApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_recluta_v1_recluta_proto_rawDescGZIP(), []int{6}
}

func (x *ListApplicationsResponse) GetApplications() []*Application {
	if x != nil {
		return x.Applications
	}
	return nil
}

type StartBackgroundCheckRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	CvRecordId    int32                  `protobuf:"varint,2,opt,name=cv_record_id,json=cvRecordId,proto3" json:"cv_record_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartBackgroundCheckRequest) Reset() {
	*x = StartBackgroundCheckRequest{}
	mi := &file_recluta_v1_recluta_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartBackgroundCheckRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartBackgroundCheckRequest) ProtoMessage() {}

func (x *StartBackgroundCheckRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recluta_v1_recluta_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartBackgroundCheckRequest.ProtoReflect.Descriptor instead.
func (*StartBackgroundCheckRequest) Descriptor() ([]byte, []int) {
	return file_recluta_v1_recluta_proto_rawDescGZIP(), []int{7}
}

func (x *StartBackgroundCheckRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *StartBackgroundCheckRequest) GetCvRecordId() int32 {
	if x != nil {
		return x.CvRecordId
	}
	return 0
}

type StartBackgroundCheckResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queued        bool                   `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartBackgroundCheckResponse) Reset() {
	*x = StartBackgroundCheckResponse{}
	mi := &file_recluta_v1_recluta_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartBackgroundCheckResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartBackgroundCheckResponse) ProtoMessage() {}

func (x *StartBackgroundCheckResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recluta_v1_recluta_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartBackgroundCheckResponse.ProtoReflect.Descriptor instead.
func (*StartBackgroundCheckResponse) Descriptor() ([]byte, []int) {
	return file_recluta_v1_recluta_proto_rawDescGZIP(), []int{8}
}

func (x *StartBackgroundCheckResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type ExportApplicationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OfferId       int32                  `protobuf:"varint,1,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportApplicationsRequest) Reset() {
	*x = ExportApplicationsRequest{}
	mi := &file_recluta_v1_recluta_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportApplicationsRequest) ProtoMessage() {}

func (x *ExportApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recluta_v1_recluta_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportApplicationsRequest.ProtoReflect.Descriptor instead.
func (*ExportApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_recluta_v1_recluta_proto_rawDescGZIP(), []int{9}
}

func (x *ExportApplicationsRequest) GetOfferId() int32 {
	if x != nil {
		return x.OfferId
	}
	return 0
}

type ExportApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportApplicationsResponse) Reset() {
	*x = ExportApplicationsResponse{}
	mi := &file_recluta_v1_recluta_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportApplicationsResponse) ProtoMessage() {}

func (x *ExportApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recluta_v1_recluta_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportApplicationsResponse.ProtoReflect.Descriptor instead.
func (*ExportApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_recluta_v1_recluta_proto_rawDescGZIP(), []int{10}
}

func (x *ExportApplicationsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_recluta_v1_recluta_proto protoreflect.FileDescriptor

const file_recluta_v1_recluta_proto_rawDesc = "" +
	"\n" +
	"\x18recluta/v1/recluta.proto\x12\n" +
	"recluta.v1\">\n" +
	"\x06CVFile\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"\\\n" +
	"\x15ProcessCVBatchRequest\x12\x19\n" +
	"\boffer_id\x18\x01 \x01(\x05R\aofferId\x12(\n" +
	"\x05files\x18\x02 \x03(\v2\x12.recluta.v1.CVFileR\x05files\"]\n" +
	"\x12ApplicationOutcome\x12 \n" +
	"\fcv_record_id\x18\x01 \x01(\x05R\n" +
	"cvRecordId\x12%\n" +
	"\x0eapplication_id\x18\x02 \x01(\x05R\rapplicationId\"\x84\x01\n" +
	"\x16ProcessCVBatchResponse\x12:\n" +
	"\boutcomes\x18\x01 \x03(\v2\x1e.recluta.v1.ApplicationOutcomeR\boutcomes\x12\x16\n" +
	"\x06scored\x18\x02 \x01(\x05R\x06scored\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\"4\n" +
	"\x17ListApplicationsRequest\x12\x19\n" +
	"\boffer_id\x18\x01 \x01(\x05R\aofferId\"\x83\x04\n" +
	"\vApplication\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12 \n" +
	"\fcv_record_id\x18\x02 \x01(\x05R\n" +
	"cvRecordId\x12\x19\n" +
	"\boffer_id\x18\x03 \x01(\x05R\aofferId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x14\n" +
	"\x05score\x18\x05 \x01(\x01R\x05score\x12%\n" +
	"\x0ecandidate_name\x18\x06 \x01(\tR\rcandidateName\x12#\n" +
	"\rcandidate_dni\x18\a \x01(\tR\fcandidateDni\x12,\n" +
	"\x12candidate_dni_type\x18\b \x01(\tR\x10candidateDniType\x12%\n" +
	"\x0ecandidate_city\x18\t \x01(\tR\rcandidateCity\x12'\n" +
	"\x0fcandidate_phone\x18\n" +
	" \x01(\tR\x0ecandidatePhone\x12%\n" +
	"\x0ecandidate_mail\x18\v \x01(\tR\rcandidateMail\x12)\n" +
	"\x10background_check\x18\f \x01(\tR\x0fbackgroundCheck\x12'\n" +
	"\x0fbackground_date\x18\r \x01(\tR\x0ebackgroundDate\x12\x15\n" +
	"\x06cv_url\x18\x0e \x01(\tR\x05cvUrl\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\"W\n" +
	"\x18ListApplicationsResponse\x12;\n" +
	"\fapplications\x18\x01 \x03(\v2\x17.recluta.v1.ApplicationR\fapplications\"V\n" +
	"\x1bStartBackgroundCheckRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12 \n" +
	"\fcv_record_id\x18\x02 \x01(\x05R\n" +
	"cvRecordId\"6\n" +
	"\x1cStartBackgroundCheckResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\bR\x06queued\"6\n" +
	"\x19ExportApplicationsRequest\x12\x19\n" +
	"\boffer_id\x18\x01 \x01(\x05R\aofferId\"0\n" +
	"\x1aExportApplicationsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x9c\x03\n" +
	"\x12RecruitmentService\x12W\n" +
	"\x0eProcessCVBatch\x12!.recluta.v1.ProcessCVBatchRequest\x1a\".recluta.v1.ProcessCVBatchResponse\x12]\n" +
	"\x10ListApplications\x12#.recluta.v1.ListApplicationsRequest\x1a$.recluta.v1.ListApplicationsResponse\x12i\n" +
	"\x14StartBackgroundCheck\x12'.recluta.v1.StartBackgroundCheckRequest\x1a(.recluta.v1.StartBackgroundCheckResponse\x12c\n" +
	"\x12ExportApplications\x12%.recluta.v1.ExportApplicationsRequest\x1a&.recluta.v1.ExportApplicationsResponseBCZAgithub.com/recluta/recluta-backend/gen/proto/recluta/v1;reclutav1b\x06proto3"

var (
	file_recluta_v1_recluta_proto_rawDescOnce sync.Once
	file_recluta_v1_recluta_proto_rawDescData []byte
)

func file_recluta_v1_recluta_proto_rawDescGZIP() []byte {
	file_recluta_v1_recluta_proto_rawDescOnce.Do(func() {
		file_recluta_v1_recluta_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_recluta_v1_recluta_proto_rawDesc), len(file_recluta_v1_recluta_proto_rawDesc)))
	})
	return file_recluta_v1_recluta_proto_rawDescData
}

var file_recluta_v1_recluta_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_recluta_v1_recluta_proto_goTypes = []any{
	(*CVFile)(nil),                       // 0: recluta.v1.CVFile
	(*ProcessCVBatchRequest)(nil),        // 1: recluta.v1.ProcessCVBatchRequest
	(*ApplicationOutcome)(nil),           // 2: recluta.v1.ApplicationOutcome
	(*ProcessCVBatchResponse)(nil),       // 3: recluta.v1.ProcessCVBatchResponse
	(*ListApplicationsRequest)(nil),      // 4: recluta.v1.ListApplicationsRequest
	(*Application)(nil),                  // 5: recluta.v1.Application
	(*ListApplicationsResponse)(nil),     // 6: recluta.v1.ListApplicationsResponse
	(*StartBackgroundCheckRequest)(nil),  // 7: recluta.v1.StartBackgroundCheckRequest
	(*StartBackgroundCheckResponse)(nil), // 8: recluta.v1.StartBackgroundCheckResponse
	(*ExportApplicationsRequest)(nil),    // 9: recluta.v1.ExportApplicationsRequest
	(*ExportApplicationsResponse)(nil),   // 10: recluta.v1.ExportApplicationsResponse
}
var file_recluta_v1_recluta_proto_depIdxs = []int32{
	0,  // 0: recluta.v1.ProcessCVBatchRequest.files:type_name -> recluta.v1.CVFile
	2,  // 1: recluta.v1.ProcessCVBatchResponse.outcomes:type_name -> recluta.v1.ApplicationOutcome
	5,  // 2: recluta.v1.ListApplicationsResponse.applications:type_name -> recluta.v1.Application
	1,  // 3: recluta.v1.RecruitmentService.ProcessCVBatch:input_type -> recluta.v1.ProcessCVBatchRequest
	4,  // 4: recluta.v1.RecruitmentService.ListApplications:input_type -> recluta.v1.ListApplicationsRequest
	7,  // 5: recluta.v1.RecruitmentService.StartBackgroundCheck:input_type -> recluta.v1.StartBackgroundCheckRequest
	9,  // 6: recluta.v1.RecruitmentService.ExportApplications:input_type -> recluta.v1.ExportApplicationsRequest
	3,  // 7: recluta.v1.RecruitmentService.ProcessCVBatch:output_type -> recluta.v1.ProcessCVBatchResponse
	6,  // 8: recluta.v1.RecruitmentService.ListApplications:output_type -> recluta.v1.ListApplicationsResponse
	8,  // 9: recluta.v1.RecruitmentService.StartBackgroundCheck:output_type -> recluta.v1.StartBackgroundCheckResponse
	10, // 10: recluta.v1.RecruitmentService.ExportApplications:output_type -> recluta.v1.ExportApplicationsResponse
	7,  // [7:11] is the sub-list for method output_type
	3,  // [3:7] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_recluta_v1_recluta_proto_init() }
func file_recluta_v1_recluta_proto_init() {
	if File_recluta_v1_recluta_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_recluta_v1_recluta_proto_rawDesc), len(file_recluta_v1_recluta_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_recluta_v1_recluta_proto_goTypes,
		DependencyIndexes: file_recluta_v1_recluta_proto_depIdxs,
		MessageInfos:      file_recluta_v1_recluta_proto_msgTypes,
	}.Build()
	File_recluta_v1_recluta_proto = out.File
	file_recluta_v1_recluta_proto_goTypes = nil
	file_recluta_v1_recluta_proto_depIdxs = nil
}
