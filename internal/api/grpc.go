package api

import (
	"context"
	"net/http"
	"time"

	"github.com/murean5/ML-OPS/internal/ml"
	"github.com/murean5/ML-OPS/pkg/api"
	"github.com/murean5/ML-OPS/proto"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GrpcServer adapts the shared backend operations to the binary protocol.
// Every method delegates to the same *Op implementation the REST handlers
// use, then translates the coded error to the equivalent gRPC status.
type GrpcServer struct {
	proto.UnimplementedMLServiceServer

	service *BackendService
}

func NewGrpcServer(service *BackendService) *GrpcServer {
	return &GrpcServer{service: service}
}

func toStatusError(err error) error {
	if err == nil {
		return nil
	}

	switch ErrorCode(err) {
	case http.StatusNotFound:
		return status.Error(codes.NotFound, err.Error())
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return status.Error(codes.InvalidArgument, err.Error())
	case http.StatusConflict:
		return status.Error(codes.FailedPrecondition, err.Error())
	case http.StatusServiceUnavailable:
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func parseUUID(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s %q", field, value)
	}
	return id, nil
}

func (g *GrpcServer) HealthCheck(ctx context.Context, req *proto.HealthCheckRequest) (*proto.HealthCheckResponse, error) {
	return &proto.HealthCheckResponse{Status: "ok"}, nil
}

func (g *GrpcServer) GetAvailableModels(ctx context.Context, req *proto.GetAvailableModelsRequest) (*proto.GetAvailableModelsResponse, error) {
	return &proto.GetAvailableModelsResponse{ModelTypes: ml.AvailableTypes()}, nil
}

func (g *GrpcServer) ListDatasets(ctx context.Context, req *proto.ListDatasetsRequest) (*proto.ListDatasetsResponse, error) {
	datasets, err := g.service.ListDatasetsOp(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	res := &proto.ListDatasetsResponse{Datasets: make([]*proto.DatasetInfo, 0, len(datasets))}
	for _, d := range datasets {
		res.Datasets = append(res.Datasets, datasetToProto(d))
	}
	return res, nil
}

func (g *GrpcServer) UploadDataset(ctx context.Context, req *proto.UploadDatasetRequest) (*proto.UploadDatasetResponse, error) {
	res, err := g.service.UploadDatasetOp(ctx, req.GetFileName(), req.GetFormat(), req.GetContent())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &proto.UploadDatasetResponse{
		DatasetId:   res.DatasetId.String(),
		RowCount:    int32(res.RowCount),
		ColumnCount: int32(res.ColumnCount),
	}, nil
}

func (g *GrpcServer) GetDataset(ctx context.Context, req *proto.GetDatasetRequest) (*proto.DatasetInfo, error) {
	datasetId, err := parseUUID(req.GetDatasetId(), "dataset_id")
	if err != nil {
		return nil, err
	}

	d, err := g.service.GetDatasetOp(ctx, datasetId)
	if err != nil {
		return nil, toStatusError(err)
	}
	return datasetToProto(d), nil
}

func (g *GrpcServer) DeleteDataset(ctx context.Context, req *proto.DeleteDatasetRequest) (*proto.DeleteResponse, error) {
	datasetId, err := parseUUID(req.GetDatasetId(), "dataset_id")
	if err != nil {
		return nil, err
	}

	res, err := g.service.DeleteDatasetOp(ctx, datasetId)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &proto.DeleteResponse{Id: res.Id.String(), Deleted: res.Deleted}, nil
}

func (g *GrpcServer) ListModels(ctx context.Context, req *proto.ListModelsRequest) (*proto.ListModelsResponse, error) {
	query := api.ListModelsQuery{
		Status:    req.GetStatus(),
		ModelType: req.GetModelType(),
	}
	if req.GetDatasetId() != "" {
		datasetId, err := parseUUID(req.GetDatasetId(), "dataset_id")
		if err != nil {
			return nil, err
		}
		query.DatasetId = datasetId
	}

	models, err := g.service.ListModelsOp(ctx, query)
	if err != nil {
		return nil, toStatusError(err)
	}

	res := &proto.ListModelsResponse{Models: make([]*proto.ModelInfo, 0, len(models))}
	for _, m := range models {
		res.Models = append(res.Models, modelToProto(m))
	}
	return res, nil
}

func (g *GrpcServer) GetModel(ctx context.Context, req *proto.GetModelRequest) (*proto.ModelInfo, error) {
	modelId, err := parseUUID(req.GetModelId(), "model_id")
	if err != nil {
		return nil, err
	}

	m, err := g.service.GetModelOp(ctx, modelId)
	if err != nil {
		return nil, toStatusError(err)
	}
	return modelToProto(m), nil
}

func (g *GrpcServer) TrainModel(ctx context.Context, req *proto.TrainModelRequest) (*proto.TrainModelResponse, error) {
	datasetId, err := parseUUID(req.GetDatasetId(), "dataset_id")
	if err != nil {
		return nil, err
	}

	res, err := g.service.TrainModelOp(ctx, api.TrainRequest{
		ModelType:       req.GetModelType(),
		DatasetId:       datasetId,
		Hyperparameters: req.GetHyperparameters(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &proto.TrainModelResponse{ModelId: res.ModelId.String(), Status: res.Status}, nil
}

func (g *GrpcServer) RetrainModel(ctx context.Context, req *proto.RetrainModelRequest) (*proto.TrainModelResponse, error) {
	modelId, err := parseUUID(req.GetModelId(), "model_id")
	if err != nil {
		return nil, err
	}

	retrain := api.RetrainRequest{Hyperparameters: req.GetHyperparameters()}
	if req.GetDatasetId() != "" {
		datasetId, err := parseUUID(req.GetDatasetId(), "dataset_id")
		if err != nil {
			return nil, err
		}
		retrain.DatasetId = &datasetId
	}

	res, err := g.service.RetrainModelOp(ctx, modelId, retrain)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &proto.TrainModelResponse{ModelId: res.ModelId.String(), Status: res.Status}, nil
}

func (g *GrpcServer) Predict(ctx context.Context, req *proto.PredictRequest) (*proto.PredictResponse, error) {
	modelId, err := parseUUID(req.GetModelId(), "model_id")
	if err != nil {
		return nil, err
	}

	features := make([][]float64, 0, len(req.GetRows()))
	for _, row := range req.GetRows() {
		features = append(features, row.GetValues())
	}

	res, err := g.service.PredictOp(ctx, modelId, features)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &proto.PredictResponse{ModelId: res.ModelId.String(), Predictions: res.Predictions}, nil
}

func (g *GrpcServer) DeleteModel(ctx context.Context, req *proto.DeleteModelRequest) (*proto.DeleteResponse, error) {
	modelId, err := parseUUID(req.GetModelId(), "model_id")
	if err != nil {
		return nil, err
	}

	res, err := g.service.DeleteModelOp(ctx, modelId)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &proto.DeleteResponse{Id: res.Id.String(), Deleted: res.Deleted}, nil
}

func datasetToProto(d api.Dataset) *proto.DatasetInfo {
	return &proto.DatasetInfo{
		DatasetId:    d.Id.String(),
		FileName:     d.FileName,
		Format:       d.Format,
		RowCount:     int32(d.RowCount),
		ColumnCount:  int32(d.ColumnCount),
		SizeBytes:    d.SizeBytes,
		CreationTime: d.CreationTime.Format(time.RFC3339),
	}
}

func modelToProto(m api.Model) *proto.ModelInfo {
	info := &proto.ModelInfo{
		ModelId:         m.Id.String(),
		ModelType:       m.Type,
		DatasetId:       m.DatasetId.String(),
		Status:          m.Status,
		Hyperparameters: m.Hyperparameters,
		Metrics:         m.Metrics,
		NumFeatures:     int32(m.NumFeatures),
		Error:           m.Error,
		CreationTime:    m.CreationTime.Format(time.RFC3339),
	}
	if m.CompletionTime != nil {
		info.CompletionTime = m.CompletionTime.Format(time.RFC3339)
	}
	return info
}
