// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

// Package webapi serves the node HTTP API: runtime discovery, call
// submission and chain state lookups.
package webapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pangpanglabs/echoswagger/v2"

	"github.com/iotaledger/hive.go/log"

	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/packages/webapi/models"
	"github.com/iotaledger/sawfly/packages/webapi/routes"
)

// ChainBackend is the chain surface the web API exposes.
type ChainBackend interface {
	Name() string
	Generation() string
	LatestBlockIndex() uint32
	CallTable() *ledger.CallTable
	SubmitCall(ctx context.Context, call *ledger.Call) (*ledger.Receipt, error)
	GetReceipt(requestID hashing.HashValue) (*ledger.Receipt, bool)
	GetCodeInfo(hash hashing.HashValue) (*ledger.CodeInfo, bool)
	GetContractInfo(address ledger.AccountID) (*ledger.ContractInfo, bool)
}

func NewEcho(debug bool, version string, logger log.Logger) echoswagger.ApiRoot {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.BodyLimit("2M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"*"},
		AllowMethods:     []string{"*"},
		AllowCredentials: true,
	}))

	swagger := echoswagger.New(e, "/doc", &echoswagger.Info{
		Title:       "Sawfly API",
		Description: "REST API for the sawfly sandbox node",
		Version:     version,
	})
	swagger.SetRequestContentType(echo.MIMEApplicationJSON)
	swagger.SetResponseContentType(echo.MIMEApplicationJSON)

	if debug {
		swagger.Echo().Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
			logger.LogDebugf("API Dump: Request=%q, Response=%q", reqBody, resBody)
		}))
	}

	return swagger
}

// Init mounts the versioned API routes on the given root.
func Init(swagger echoswagger.ApiRoot, backend ChainBackend, version string, logger log.Logger) {
	api := swagger.Group("chain", routes.Prefix())
	api.EchoGroup().Use(errorHandler)
	addChainEndpoints(api, backend, version, logger.NewChildLogger("webapi"))
}

// errorHandler renders handler errors as the JSON error envelope. Unhandled
// errors become a 500.
func errorHandler(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err == nil {
			return nil
		}
		status := http.StatusInternalServerError
		message := err.Error()
		var httpError *echo.HTTPError
		if errors.As(err, &httpError) {
			status = httpError.Code
			message = fmt.Sprint(httpError.Message)
		}
		return c.JSON(status, &models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    strconv.Itoa(status),
				Message: message,
			},
		})
	}
}
