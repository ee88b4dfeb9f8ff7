package profile

import "github.com/m04kA/SMC-RoomBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
