// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: dealslips/v1/dealslips.proto

package dealslipsv1

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

// One uploaded deal slip document (PDF or DOCX bytes).
type SlipUpload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SlipUpload) Reset() {
	*x = SlipUpload{}
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SlipUpload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SlipUpload) ProtoMessage() {}

func (x *SlipUpload) ProtoReflect() protoreflect.Message {
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SlipUpload.ProtoReflect.Descriptor instead.
func (*SlipUpload) Descriptor() ([]byte, []int) {
	return file_dealslips_v1_dealslips_proto_rawDescGZIP(), []int{0}
}

func (x *SlipUpload) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SlipUpload) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type ProcessBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Files         []*SlipUpload          `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessBatchRequest) Reset() {
	*x = ProcessBatchRequest{}
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessBatchRequest) ProtoMessage() {}

func (x *ProcessBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessBatchRequest.ProtoReflect.Descriptor instead.
func (*ProcessBatchRequest) Descriptor() ([]byte, []int) {
	return file_dealslips_v1_dealslips_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessBatchRequest) GetFiles() []*SlipUpload {
	if x != nil {
		return x.Files
	}
	return nil
}

// RowSummary mirrors one output row of the workbook, in upload order.
type RowSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	DealReference string                 `protobuf:"bytes,2,opt,name=deal_reference,json=dealReference,proto3" json:"deal_reference,omitempty"`
	Isin          string                 `protobuf:"bytes,3,opt,name=isin,proto3" json:"isin,omitempty"`
	Variant       string                 `protobuf:"bytes,4,opt,name=variant,proto3" json:"variant,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Error         string                 `protobuf:"bytes,6,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RowSummary) Reset() {
	*x = RowSummary{}
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RowSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RowSummary) ProtoMessage() {}

func (x *RowSummary) ProtoReflect() protoreflect.Message {
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RowSummary.ProtoReflect.Descriptor instead.
func (*RowSummary) Descriptor() ([]byte, []int) {
	return file_dealslips_v1_dealslips_proto_rawDescGZIP(), []int{2}
}

func (x *RowSummary) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *RowSummary) GetDealReference() string {
	if x != nil {
		return x.DealReference
	}
	return ""
}

func (x *RowSummary) GetIsin() string {
	if x != nil {
		return x.Isin
	}
	return ""
}

func (x *RowSummary) GetVariant() string {
	if x != nil {
		return x.Variant
	}
	return ""
}

func (x *RowSummary) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *RowSummary) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ProcessBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Rows          []*RowSummary          `protobuf:"bytes,4,rep,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessBatchResponse) Reset() {
	*x = ProcessBatchResponse{}
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessBatchResponse) ProtoMessage() {}

func (x *ProcessBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessBatchResponse.ProtoReflect.Descriptor instead.
func (*ProcessBatchResponse) Descriptor() ([]byte, []int) {
	return file_dealslips_v1_dealslips_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessBatchResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ProcessBatchResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ProcessBatchResponse) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *ProcessBatchResponse) GetRows() []*RowSummary {
	if x != nil {
		return x.Rows
	}
	return nil
}

// ProcessDirectoryRequest points at a directory on the server's filesystem.
type ProcessDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDirectoryRequest) Reset() {
	*x = ProcessDirectoryRequest{}
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDirectoryRequest) ProtoMessage() {}

func (x *ProcessDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDirectoryRequest.ProtoReflect.Descriptor instead.
func (*ProcessDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_dealslips_v1_dealslips_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *ProcessDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type ProcessDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Rows          []*RowSummary          `protobuf:"bytes,4,rep,name=rows,proto3" json:"rows,omitempty"`
	Scanned       uint32                 `protobuf:"varint,5,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,6,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,7,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,8,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,9,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDirectoryResponse) Reset() {
	*x = ProcessDirectoryResponse{}
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDirectoryResponse) ProtoMessage() {}

func (x *ProcessDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dealslips_v1_dealslips_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDirectoryResponse.ProtoReflect.Descriptor instead.
func (*ProcessDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_dealslips_v1_dealslips_proto_rawDescGZIP(), []int{5}
}

func (x *ProcessDirectoryResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ProcessDirectoryResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ProcessDirectoryResponse) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *ProcessDirectoryResponse) GetRows() []*RowSummary {
	if x != nil {
		return x.Rows
	}
	return nil
}

func (x *ProcessDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *ProcessDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *ProcessDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *ProcessDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *ProcessDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

var File_dealslips_v1_dealslips_proto protoreflect.FileDescriptor

const file_dealslips_v1_dealslips_proto_rawDesc = "" +
	"\n" +
	"\x1cdealslips/v1/dealslips.proto\x12\fdealslips.v1\"B\n" +
	"\n" +
	"SlipUpload\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"E\n" +
	"\x13ProcessBatchRequest\x12.\n" +
	"\x05files\x18\x01 \x03(\v2\x18.dealslips.v1.SlipUploadR\x05files\"\xab\x01\n" +
	"\n" +
	"RowSummary\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12%\n" +
	"\x0edeal_reference\x18\x02 \x01(\tR\rdealReference\x12\x12\n" +
	"\x04isin\x18\x03 \x01(\tR\x04isin\x12\x18\n" +
	"\avariant\x18\x04 \x01(\tR\avariant\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x14\n" +
	"\x05error\x18\x06 \x01(\tR\x05error\"\x97\x01\n" +
	"\x14ProcessBatchResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12,\n" +
	"\x04rows\x18\x04 \x03(\v2\x18.dealslips.v1.RowSummaryR\x04rows\"W\n" +
	"\x17ProcessDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xa9\x02\n" +
	"\x18ProcessDirectoryResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12,\n" +
	"\x04rows\x18\x04 \x03(\v2\x18.dealslips.v1.RowSummaryR\x04rows\x12\x18\n" +
	"\ascanned\x18\x05 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x06 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\a \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\b \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\t \x01(\rR\x06failed2\xcb\x01\n" +
	"\x0fDealSlipService\x12U\n" +
	"\fProcessBatch\x12!.dealslips.v1.ProcessBatchRequest\x1a\".dealslips.v1.ProcessBatchResponse\x12a\n" +
	"\x10ProcessDirectory\x12%.dealslips.v1.ProcessDirectoryRequest\x1a&.dealslips.v1.ProcessDirectoryResponseBPZNgithub.com/arvind-krishnan/dealslip-tracker/gen/proto/dealslips/v1;dealslipsv1b\x06proto3"

var (
	file_dealslips_v1_dealslips_proto_rawDescOnce sync.Once
	file_dealslips_v1_dealslips_proto_rawDescData []byte
)

func file_dealslips_v1_dealslips_proto_rawDescGZIP() []byte {
	file_dealslips_v1_dealslips_proto_rawDescOnce.Do(func() {
		file_dealslips_v1_dealslips_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_dealslips_v1_dealslips_proto_rawDesc), len(file_dealslips_v1_dealslips_proto_rawDesc)))
	})
	return file_dealslips_v1_dealslips_proto_rawDescData
}

var file_dealslips_v1_dealslips_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_dealslips_v1_dealslips_proto_goTypes = []any{
	(*SlipUpload)(nil),               // 0: dealslips.v1.SlipUpload
	(*ProcessBatchRequest)(nil),      // 1: dealslips.v1.ProcessBatchRequest
	(*RowSummary)(nil),               // 2: dealslips.v1.RowSummary
	(*ProcessBatchResponse)(nil),     // 3: dealslips.v1.ProcessBatchResponse
	(*ProcessDirectoryRequest)(nil),  // 4: dealslips.v1.ProcessDirectoryRequest
	(*ProcessDirectoryResponse)(nil), // 5: dealslips.v1.ProcessDirectoryResponse
}
var file_dealslips_v1_dealslips_proto_depIdxs = []int32{
	0, // 0: dealslips.v1.ProcessBatchRequest.files:type_name -> dealslips.v1.SlipUpload
	2, // 1: dealslips.v1.ProcessBatchResponse.rows:type_name -> dealslips.v1.RowSummary
	2, // 2: dealslips.v1.ProcessDirectoryResponse.rows:type_name -> dealslips.v1.RowSummary
	1, // 3: dealslips.v1.DealSlipService.ProcessBatch:input_type -> dealslips.v1.ProcessBatchRequest
	4, // 4: dealslips.v1.DealSlipService.ProcessDirectory:input_type -> dealslips.v1.ProcessDirectoryRequest
	3, // 5: dealslips.v1.DealSlipService.ProcessBatch:output_type -> dealslips.v1.ProcessBatchResponse
	5, // 6: dealslips.v1.DealSlipService.ProcessDirectory:output_type -> dealslips.v1.ProcessDirectoryResponse
	5, // [5:7] is the sub-list for method output_type
	3, // [3:5] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_dealslips_v1_dealslips_proto_init() }
func file_dealslips_v1_dealslips_proto_init() {
	if File_dealslips_v1_dealslips_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_dealslips_v1_dealslips_proto_rawDesc), len(file_dealslips_v1_dealslips_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_dealslips_v1_dealslips_proto_goTypes,
		DependencyIndexes: file_dealslips_v1_dealslips_proto_depIdxs,
		MessageInfos:      file_dealslips_v1_dealslips_proto_msgTypes,
	}.Build()
	File_dealslips_v1_dealslips_proto = out.File
	file_dealslips_v1_dealslips_proto_goTypes = nil
	file_dealslips_v1_dealslips_proto_depIdxs = nil
}
