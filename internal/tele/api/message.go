package tele_api

import "github.com/golang/protobuf/proto"

// Wire schema, package paystation.tele:
//
//	message Telemetry {
//	  string station_id = 1;
//	  int64 time = 2;
//	  Transaction transaction = 3;
//	  Drain drain = 4;
//	  Error error = 5;
//	}

const (
	TxInvalid  int32 = 0
	TxPurchase int32 = 1
	TxCancel   int32 = 2
)

type Telemetry struct {
	StationId   string                 `protobuf:"bytes,1,opt,name=station_id,json=stationId,proto3" json:"station_id,omitempty"`
	Time        int64                  `protobuf:"varint,2,opt,name=time,proto3" json:"time,omitempty"`
	Transaction *Telemetry_Transaction `protobuf:"bytes,3,opt,name=transaction,proto3" json:"transaction,omitempty"`
	Drain       *Telemetry_Drain       `protobuf:"bytes,4,opt,name=drain,proto3" json:"drain,omitempty"`
	Error       *Telemetry_Error       `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *Telemetry) Reset()         { *m = Telemetry{} }
func (m *Telemetry) String() string { return proto.CompactTextString(m) }
func (*Telemetry) ProtoMessage()    {}

type Telemetry_Transaction struct {
	Kind    int32  `protobuf:"varint,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Amount  uint32 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Minutes int32  `protobuf:"varint,3,opt,name=minutes,proto3" json:"minutes,omitempty"`
	Coins5  uint32 `protobuf:"varint,4,opt,name=coins5,proto3" json:"coins5,omitempty"`
	Coins10 uint32 `protobuf:"varint,5,opt,name=coins10,proto3" json:"coins10,omitempty"`
	Coins25 uint32 `protobuf:"varint,6,opt,name=coins25,proto3" json:"coins25,omitempty"`
	Seq     uint32 `protobuf:"varint,7,opt,name=seq,proto3" json:"seq,omitempty"`
}

func (m *Telemetry_Transaction) Reset()         { *m = Telemetry_Transaction{} }
func (m *Telemetry_Transaction) String() string { return proto.CompactTextString(m) }
func (*Telemetry_Transaction) ProtoMessage()    {}

type Telemetry_Drain struct {
	Amount uint32 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Telemetry_Drain) Reset()         { *m = Telemetry_Drain{} }
func (m *Telemetry_Drain) String() string { return proto.CompactTextString(m) }
func (*Telemetry_Drain) ProtoMessage()    {}

type Telemetry_Error struct {
	Message string `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *Telemetry_Error) Reset()         { *m = Telemetry_Error{} }
func (m *Telemetry_Error) String() string { return proto.CompactTextString(m) }
func (*Telemetry_Error) ProtoMessage()    {}
