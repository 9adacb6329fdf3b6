package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pangpanglabs/echoswagger/v2"

	"github.com/iotaledger/hive.go/log"

	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/packages/webapi/models"
	"github.com/iotaledger/sawfly/packages/webapi/routes"
)

func addChainEndpoints(api echoswagger.ApiGroup, backend ChainBackend, version string, logger log.Logger) {
	s := &chainService{
		backend: backend,
		version: version,
		log:     logger,
	}

	api.GET(routes.Info(), s.handleInfo).
		AddResponse(http.StatusOK, "General chain info", models.InfoResponse{}, nil).
		SetSummary("Get chain info")

	api.GET(routes.RuntimeCalls(), s.handleCallTable).
		AddResponse(http.StatusOK, "The runtime call table", models.CallTableResponse{}, nil).
		SetSummary("Get the entry points the runtime accepts")

	api.POST(routes.SubmitCall(), s.handleSubmitCall).
		AddParamBody(models.CallRequest{}, "call", "The call to execute", true).
		AddResponse(http.StatusOK, "The receipt of the executed call", models.ReceiptResponse{}, nil).
		SetSummary("Submit a call and wait for its receipt")

	api.GET(routes.GetReceipt(":requestID"), s.handleGetReceipt).
		AddParamPath("", "requestID", "Request ID (Hex)").
		AddResponse(http.StatusOK, "The receipt", models.ReceiptResponse{}, nil).
		SetSummary("Get the receipt of a processed call")

	api.GET(routes.GetCodeInfo(":codeHash"), s.handleGetCodeInfo).
		AddParamPath("", "codeHash", "Code hash (Hex)").
		AddResponse(http.StatusOK, "Info about the stored code bundle", models.CodeInfoResponse{}, nil).
		SetSummary("Get info about a stored code bundle")

	api.GET(routes.GetContractInfo(":address"), s.handleGetContractInfo).
		AddParamPath("", "address", "Contract address (Base58)").
		AddResponse(http.StatusOK, "Info about the deployed contract", models.ContractInfoResponse{}, nil).
		SetSummary("Get info about a deployed contract")
}

type chainService struct {
	backend ChainBackend
	version string
	log     log.Logger
}

func (s *chainService) handleInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, &models.InfoResponse{
		Name:       s.backend.Name(),
		Version:    s.version,
		Generation: s.backend.Generation(),
		BlockIndex: s.backend.LatestBlockIndex(),
	})
}

func (s *chainService) handleCallTable(c echo.Context) error {
	return c.JSON(http.StatusOK, models.MapCallTable(s.backend.CallTable()))
}

func (s *chainService) handleSubmitCall(c echo.Context) error {
	var req models.CallRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	call, err := req.ToCall()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.log.LogDebugf("submitted %s", call.FullName())
	receipt, err := s.backend.SubmitCall(c.Request().Context(), call)
	if err != nil {
		// execution rejections surface to the client verbatim
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, models.MapReceipt(receipt))
}

func (s *chainService) handleGetReceipt(c echo.Context) error {
	requestID, err := hashing.HashValueFromHex(c.Param("requestID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	receipt, ok := s.backend.GetReceipt(requestID)
	if !ok {
		return echo.ErrNotFound
	}
	return c.JSON(http.StatusOK, models.MapReceipt(receipt))
}

func (s *chainService) handleGetCodeInfo(c echo.Context) error {
	codeHash, err := hashing.HashValueFromHex(c.Param("codeHash"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	info, ok := s.backend.GetCodeInfo(codeHash)
	if !ok {
		return echo.ErrNotFound
	}
	return c.JSON(http.StatusOK, models.MapCodeInfo(info))
}

func (s *chainService) handleGetContractInfo(c echo.Context) error {
	address, err := ledger.AccountIDFromString(c.Param("address"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	info, ok := s.backend.GetContractInfo(address)
	if !ok {
		return echo.ErrNotFound
	}
	return c.JSON(http.StatusOK, models.MapContractInfo(info))
}
