package client

import (
	"fmt"
	"net/http"
)

const (
	MsgSessionExpired = "Sesi telah berakhir, silakan login kembali"
	MsgForbidden      = "Anda tidak memiliki akses untuk melakukan tindakan ini"
	MsgNotFound       = "Data tidak ditemukan"
	MsgInvalidData    = "Data yang dikirim tidak valid"
	MsgServerError    = "Terjadi kesalahan pada server, silakan coba lagi nanti"
	MsgUnreachable    = "Tidak dapat terhubung ke server"
	MsgCanceled       = "Permintaan dibatalkan"
	MsgGeneric        = "Terjadi kesalahan"
)

var statusMessages = map[int]string{
	http.StatusUnauthorized:        MsgSessionExpired,
	http.StatusForbidden:           MsgForbidden,
	http.StatusNotFound:            MsgNotFound,
	http.StatusUnprocessableEntity: MsgInvalidData,
	http.StatusInternalServerError: MsgServerError,
	http.StatusBadGateway:          MsgServerError,
}

// StatusMessage maps an HTTP status to the user-facing message. Unknown
// statuses get the generic text with the code appended.
func StatusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return fmt.Sprintf("%s (kode %d)", MsgGeneric, status)
}
