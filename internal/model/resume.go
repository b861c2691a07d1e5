package model

import "time"

// ResumeFile 是当前会话持有的内存简历文件句柄。
// 文件内容不做持久化，进程重启后不可恢复。
type ResumeFile struct {
	FileName    string
	ContentType string
	Content     []byte
	PreviewURL  string // 由对象存储派生的可预览句柄（预签名 URL）
	ObjectName  string // 预览句柄对应的对象名，用于撤销
}

// ResumeMarker 是简历的持久化标记：只保存文件名与上传时间，
// 重启后仅用于展示，真正的文件句柄已不可恢复。
type ResumeMarker struct {
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
}
