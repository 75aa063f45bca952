package handlers

import (
	"net/http"
	"strconv"

	"github.com/appclacks/dashboard/pkg/format"
	"github.com/labstack/echo/v4"
	er "github.com/mcorbin/corbierror"
)

type FormatBytesInput struct {
	Value    string `query:"value" validate:"required"`
	Decimals string `query:"decimals"`
}

type FormatSpeedInput struct {
	Value string `query:"value" validate:"required"`
}

type FormatOutput struct {
	Result string `json:"result"`
}

func parseValue(value string) (float64, error) {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, er.Newf("invalid value %s", er.BadRequest, true, value)
	}
	return result, nil
}

func (b *Builder) FormatBytes(ec echo.Context) error {
	var payload FormatBytesInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}
	value, err := parseValue(payload.Value)
	if err != nil {
		return err
	}
	decimals := 2
	if payload.Decimals != "" {
		decimals, err = strconv.Atoi(payload.Decimals)
		if err != nil {
			return er.Newf("invalid decimals %s", er.BadRequest, true, payload.Decimals)
		}
	}
	return ec.JSON(http.StatusOK, FormatOutput{Result: format.FormatBytes(value, decimals)})
}

func (b *Builder) FormatSpeed(ec echo.Context) error {
	var payload FormatSpeedInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}
	value, err := parseValue(payload.Value)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, FormatOutput{Result: format.FormatSpeed(value)})
}
